package patternwizard

import (
	"strings"

	"github.com/mark3labs/atelier/internal/generation"
)

// silhouette groups garments that share a preview drawing.
type silhouette int

const (
	silhouetteDress silhouette = iota
	silhouetteTop
	silhouetteBottom
	silhouetteWrap
)

func silhouetteFor(garment string) silhouette {
	switch strings.ToLower(garment) {
	case "t-shirt", "tank", "jacket", "shirt", "blouse", "top":
		return silhouetteTop
	case "jean", "jeans", "trouser", "trousers", "pants", "skirt":
		return silhouetteBottom
	case "shawl", "scarf", "wrap", "cape":
		return silhouetteWrap
	}
	return silhouetteDress
}

// front and back drawings per silhouette; the side views come from side
// and its mirror image.
var (
	frontArt = map[silhouette]string{
		silhouetteDress: `
    .-\/-.
   /  ||  \
   \  ||  /
    |    |
   /      \
  /        \
 /          \
/____________\`,
		silhouetteTop: `
  __.-\/-.__
 /  |    |  \
/_/|      |\_\
   |  ..  |
   |      |
   |______|`,
		silhouetteBottom: `
 ____________
|____.__.____|
|     ||     |
|     ||     |
|     ||     |
|     ||     |
|_____||_____|`,
		silhouetteWrap: `
 ____________
|\          /|
| \        / |
|  \      /  |
|   \    /   |
|    \  /    |
|_____\/_____|`,
	}
	backArt = map[silhouette]string{
		silhouetteDress: `
    .----.
   /  ::  \
   \  ::  /
    |    |
   /  :   \
  /   :    \
 /    :     \
/____________\`,
		silhouetteTop: `
  __.----.__
 /  |    |  \
/_/|  ::  |\_\
   |  ::  |
   |      |
   |______|`,
		silhouetteBottom: `
 ____________
|____.__.____|
| [ ]    [ ] |
|     ||     |
|     ||     |
|     ||     |
|_____||_____|`,
		silhouetteWrap: `
 ____________
|            |
|  ~~~~~~~~  |
|            |
|  ~~~~~~~~  |
|            |
|_|_|_|_|_|_||`,
	}
	sideArt = map[silhouette]string{
		silhouetteDress: `
   .-.
   |  \
   |  /
   |  |
   |   \
   |    \
   |     \
   |______\`,
		silhouetteTop: `
   .-.
  /|  \
 /_|  |
   |  |
   |  |
   |__|`,
		silhouetteBottom: `
  ____
 |___ |
 |   ||
 |   ||
 |   ||
 |   ||
 |___||`,
		silhouetteWrap: `
   __
  |  \
  |   \
  |    \
  |    /
  |   /
  |__/`,
	}
)

var mirror = strings.NewReplacer("/", "\\", "\\", "/", "(", ")", ")", "(", "[", "]", "]", "[")

// mirrorArt flips a drawing left to right.
func mirrorArt(art string) string {
	lines := strings.Split(art, "\n")
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	for i, l := range lines {
		r := []rune(l + strings.Repeat(" ", width-len([]rune(l))))
		for a, b := 0, len(r)-1; a < b; a, b = a+1, b-1 {
			r[a], r[b] = r[b], r[a]
		}
		lines[i] = strings.TrimRight(mirror.Replace(string(r)), " ")
	}
	return strings.Join(lines, "\n")
}

// preview returns the ASCII placeholder for a garment seen from v.
func preview(garment string, v generation.View) string {
	s := silhouetteFor(garment)
	var art string
	switch v {
	case generation.ViewBack:
		art = backArt[s]
	case generation.ViewLeft:
		art = sideArt[s]
	case generation.ViewRight:
		art = mirrorArt(sideArt[s])
	default:
		art = frontArt[s]
	}
	return strings.TrimPrefix(art, "\n")
}
