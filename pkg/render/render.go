// Package render produces complete HTML documents from rendered page
// bodies: head and tail sections, navigation links, keyboard and swipe
// scripts, and the default stylesheet.
package render

import (
	"fmt"
	"strings"
)

// DefaultCSS is the stylesheet embedded in page heads when no external
// CSS file is configured, and the content seeded into a configured CSS
// file that does not exist yet.
const DefaultCSS = `body { font-family: sans-serif; }

h1 {
    color: #004578;
    text-align: center;
}

h2 {
    color: #002452;
    margin-top: 2rem;
}

h3 { color: #001541; }

img {
    border: 1px solid #dde;
    border-radius: 6px;
    height: auto;
    max-width: 80%;
}

li { margin-top: 0.8rem; }

blockquote {
    border: 1px solid #b0e0e6;
    border-radius: 6px;
    color: darkslategray;
    padding: 0px 4px;
}

code {
    background-color: #eee;
    padding-left: 0.3rem;
    padding-right: 0.3rem;
    font-family: monospace;
}

#container {
    margin: 0.3rem;
    display: flex;
    align-items: center;
    justify-content: center;
    min-height: 600px;
}

#content {
    border: 1px solid silver;
    padding: 2rem 10%;
    width: 900px;
    max-width: 90%;
}

.text-center { text-align: center; }

.nav-link {
    padding-top: 2rem;
    width: 3rem;
}

.nav-link a {
    border: 1px solid silver;
    border-radius: 5px;
    font-size: 20px;
    font-weight: bold;
    margin: 0.5rem;
    padding: 0.5rem;
}

#nav-prev, #nav-next { visibility: hidden; }

#container.show-nav #nav-prev { visibility: visible; }

#container.show-nav #nav-next { visibility: visible; }

a:link, a:visited {
    color: navy;
    text-decoration: none;
}

a:hover { text-decoration: underline; }
`

// CSSLink returns the stylesheet link tag for an external CSS file.
func CSSLink(name string) string {
	return fmt.Sprintf(`<link rel="stylesheet" type="text/css" href="%s">`, name)
}

// navLinkDiv returns a div containing a navigation link. If no target is
// provided the anchor tag is omitted, not merely disabled.
func navLinkDiv(divID, target, anchor string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div id=%q class=\"nav-link\">\n", divID)
	if target != "" {
		fmt.Fprintf(&b, "  <a href=%q>%s</a>\n", target, anchor)
	}
	b.WriteString("</div>\n")
	return b.String()
}

// Head returns the head section of a page document. The page number tags
// the container div; cssLink is an external stylesheet link tag or "" to
// embed the default style; addClasses tokens go on the content div; lang
// sets the html lang attribute.
func Head(title string, pageNum int, prevPage, cssLink, addClasses, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html lang=%q>\n<head>\n<title>%s</title>\n", lang, title)
	b.WriteString("<meta http-equiv=\"Content-Type\" content=\"text/html; charset=UTF-8\">\n")

	if cssLink != "" {
		b.WriteString(cssLink + "\n")
	} else {
		fmt.Fprintf(&b, "<style>\n%s</style>\n", DefaultCSS)
	}

	b.WriteString("<link rel=\"stylesheet\" type=\"text/css\" href=\"custom.css\">\n")

	fmt.Fprintf(&b, "</head>\n<body>\n<div id=\"container\" class=\"page-%03d\">\n\n", pageNum)

	b.WriteString(navLinkDiv("nav-prev", prevPage, "&larr;"))

	classAttr := ""
	if addClasses != "" {
		classAttr = fmt.Sprintf(" class=%q", addClasses)
	}
	fmt.Fprintf(&b, "\n<div id=\"content\"%s>\n", classAttr)

	return b.String()
}

// Tail returns the tail section of a page document: the closing content
// and container divs, the next-page navigation link, and the navigation
// scripts.
func Tail(prevPage, nextPage string) string {
	var b strings.Builder
	b.WriteString("</div>  <!-- content -->\n\n")
	b.WriteString(navLinkDiv("nav-next", nextPage, "&rarr;"))
	b.WriteString("\n</div>  <!-- container -->\n\n")
	b.WriteString(scriptNavKeyboardOrSwipe(prevPage, nextPage) + "\n")
	b.WriteString(scriptNavShowHide() + "\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// scriptNavKeyboardOrSwipe returns a script navigating to the previous or
// next page on arrow/page keys or horizontal and vertical swipe gestures.
func scriptNavKeyboardOrSwipe(prevPage, nextPage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<script type="text/javascript">
    let startX = 0;
    let startY = 0;
    let endX = 0;
    let endY = 0;
    let prevPage = '%s';
    let nextPage = '%s';
    const MIN_SWIPE = 30;

`, prevPage, nextPage)
	b.WriteString(`    document.addEventListener('keydown', function(event) {
        const key = event.key;
        switch (key) {
            case "ArrowLeft":
                if (prevPage) { window.location.href = prevPage; }
                break;
            case "PageUp":
                if (prevPage) { window.location.href = prevPage; }
                break;
            case "ArrowRight":
                if (nextPage) { window.location.href = nextPage; }
                break;
            case "PageDown":
                if (nextPage) { window.location.href = nextPage; }
                break;
            default:
                break;
        }
    });

    document.addEventListener('touchstart', (event) => {
        startX = event.changedTouches[0].screenX;
        startY = event.changedTouches[0].screenY;
    }, false);

    document.addEventListener('touchend', (event) => {
        endX = event.changedTouches[0].screenX;
        endY = event.changedTouches[0].screenY;
        handleSwipe();
    }, false);

    function handleSwipe() {
        let diffX = endX - startX;
        let diffY = endY - startY;

        if (Math.abs(diffX) > Math.abs(diffY)) {
            if (Math.abs(diffX) > MIN_SWIPE) {
                if (diffX > 0) {  // Swipe right
                    if (prevPage) { window.location.href = prevPage; }
                } else {  // Swipe left
                    if (nextPage) { window.location.href = nextPage; }
                }
            }
        } else {
            if (Math.abs(diffY) > MIN_SWIPE) {
                if (diffY > 0) {  // Swipe down
                    if (prevPage) { window.location.href = prevPage; }
                } else {  // Swipe up
                    if (nextPage) { window.location.href = nextPage; }
                }
            }
        }
    }
</script>
`)
	return b.String()
}

// scriptNavShowHide returns a script revealing the navigation elements on
// mouse movement and hiding them again after a two-second timeout.
func scriptNavShowHide() string {
	return `<script type="text/javascript">
    var containerDiv = document.getElementById('container');
    var timeoutId;
    document.addEventListener('mousemove', function() {
        containerDiv.classList.add('show-nav');
        if (timeoutId) {
            clearTimeout(timeoutId);
        }
        timeoutId = setTimeout(function() {
            containerDiv.classList.remove('show-nav');
        }, 2000);
    });
</script>
`
}

// AddTargetBlank adds target="_blank" to external links. This is a blunt
// substring replacement, not HTML-aware: anchors with attributes before
// href, or with an existing target attribute, are left as-is.
func AddTargetBlank(html string) string {
	return strings.ReplaceAll(html, `<a href="http`, `<a target="_blank" href="http`)
}
