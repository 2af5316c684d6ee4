package display

import (
	"fmt"
	"io"

	"github.com/backmassage/symcat/internal/term"
)

const bannerArt = `                                 _
 ___ _   _ _ __ ___   ___ __ _| |_
/ __| | | | '_ ` + "`" + ` _ \ / __/ _` + "`" + ` | __|
\__ \ |_| | | | | | | (_| (_| | |_
|___/\__, |_| |_| |_|\___\__,_|\__|
     |___/`

// PrintBanner writes the ASCII art banner and version to w; magenta if
// colors are enabled.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintln(w, term.Render(term.Magenta, bannerArt))
	fmt.Fprintln(w, "  symbol catalog builder v"+version)
	fmt.Fprintln(w)
}
