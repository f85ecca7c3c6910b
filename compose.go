package score2pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yabed/go-score2pdf/internal/assets"
)

// certificateComposer defines the contract for turning one record into
// final certificate markup ready for rendering.
type certificateComposer interface {
	Compose(ctx context.Context, rec *Record) (string, error)
}

// assetComposer assembles certificate HTML from template assets.
// Templates and images are loaded fresh on every Compose call; there is
// no caching layer between invocations.
type assetComposer struct {
	loader       assets.Loader
	templateName string
	styleName    string
}

// newAssetComposer creates a composer backed by the given asset loader.
func newAssetComposer(loader assets.Loader) *assetComposer {
	return &assetComposer{
		loader:       loader,
		templateName: assets.DefaultTemplateName,
		styleName:    assets.DefaultStyleName,
	}
}

// Background-image rules recognized in the stylesheet. The medal and
// ribbon images vary by subject, so their url() is rewritten wherever it
// appears inside the matching rule.
var (
	medalRulePattern  = regexp.MustCompile(`(\.medal\s*{[^}]*background:\s*)url\("[^"]*"\)([^}]*})`)
	ribbonRulePattern = regexp.MustCompile(`(\.ribbon\s*{[^}]*background:\s*)url\("[^"]*"\)([^}]*})`)
)

// Literal image URLs for the two fixed decorative images.
const (
	crestImageURL   = `url("../images/crest.png")`
	twinkleImageURL = `url("../images/twinkle.png")`
)

// Markup fragments for the score-up template variant.
const (
	pointSpan   = `<span class="point">点</span>`
	pointUpSpan = `<span class="point point-up"><span class="ten">点</span><span class="up">UP</span></span>`
)

// Compose builds the final certificate markup for one validated record:
// placeholder substitution, subject image inlining, template-variant CSS,
// and the fixed-size document shell.
func (c *assetComposer) Compose(ctx context.Context, rec *Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	htmlContent, err := c.loader.LoadTemplate(c.templateName)
	if err != nil {
		return "", fmt.Errorf("loading template: %w", err)
	}
	cssContent, err := c.loader.LoadStyle(c.styleName)
	if err != nil {
		return "", fmt.Errorf("loading stylesheet: %w", err)
	}

	// Template-variant adjustments before substitution so the rewritten
	// point markup never collides with substituted values.
	if rec.TemplateType == TemplateScoreUpDisplay {
		cssContent += buildScoreUpCSS()
		htmlContent = strings.Replace(htmlContent, pointSpan, pointUpSpan, 1)
	}

	// Placeholder substitution is literal and total: values replace the
	// [name]{.name} tokens exactly as given.
	for _, sub := range []struct{ placeholder, value string }{
		{"[sc_year]{.sc_year}", rec.SchoolYear},
		{"[last_name]{.last_name}", rec.LastName},
		{"[first_name]{.first_name}", rec.FirstName},
		{"[subject]{.subject}", rec.Subject},
		{"[test_name]{.test_name}", rec.TestName},
		{"[score]{.score}", strconv.Itoa(rec.Score)},
	} {
		htmlContent = strings.ReplaceAll(htmlContent, sub.placeholder, sub.value)
	}

	cssContent, err = c.inlineImages(cssContent, rec.Subject)
	if err != nil {
		return "", err
	}

	cssContent += buildRibbonLayoutCSS()

	sa := LookupSubjectAssets(rec.Subject)
	twoLine := sa.TwoLine != ""
	cssContent += buildSubjectCSS(twoLine)
	if twoLine {
		htmlContent = strings.Replace(htmlContent,
			`<span class="subject">`+rec.Subject+`</span>`,
			`<span class="subject">`+sa.TwoLine+`</span>`, 1)
	}

	return wrapDocument(htmlContent, cssContent)
}

// inlineImages encodes the subject medal and ribbon plus the two fixed
// decorative images as base64 data URIs and splices them into the CSS.
func (c *assetComposer) inlineImages(cssContent, subject string) (string, error) {
	sa := LookupSubjectAssets(subject)

	medal, err := c.imageDataURI(sa.Medal)
	if err != nil {
		return "", err
	}
	ribbon, err := c.imageDataURI(sa.Ribbon)
	if err != nil {
		return "", err
	}
	crest, err := c.imageDataURI("crest")
	if err != nil {
		return "", err
	}
	twinkle, err := c.imageDataURI("twinkle")
	if err != nil {
		return "", err
	}

	cssContent = medalRulePattern.ReplaceAllString(cssContent, `${1}url("`+medal+`")${2}`)
	cssContent = ribbonRulePattern.ReplaceAllString(cssContent, `${1}url("`+ribbon+`")${2}`)
	cssContent = strings.ReplaceAll(cssContent, crestImageURL, `url("`+crest+`")`)
	cssContent = strings.ReplaceAll(cssContent, twinkleImageURL, `url("`+twinkle+`")`)
	return cssContent, nil
}

// imageDataURI loads an image asset and encodes it as a PNG data URI.
func (c *assetComposer) imageDataURI(name string) (string, error) {
	raw, err := c.loader.LoadImage(name)
	if err != nil {
		return "", fmt.Errorf("loading image %q: %w", name, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// Fixed canvas dimensions in CSS pixels (A4-landscape-like layout).
const (
	canvasWidthPx  = 842
	canvasHeightPx = 595
)

// fontLink loads the web font used throughout the certificate.
const fontLink = `<link href="https://fonts.googleapis.com/css?family=Inter&display=swap" rel="stylesheet" />`

// wrapDocument extracts the interior of the template's body element and
// wraps it in a minimal document shell with the assembled CSS inline and
// a fixed-pixel canvas.
func wrapDocument(htmlContent, cssContent string) (string, error) {
	body, err := bodyInterior(htmlContent)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
    <head>
        <meta charset="UTF-8">
        %s
        <style>
            %s
            html, body {
                margin: 0;
                padding: 0;
                width: %dpx;
                height: %dpx;
                overflow: hidden;
            }
        </style>
    </head>
    <body>
        %s
    </body>
</html>`, fontLink, cssContent, canvasWidthPx, canvasHeightPx, body), nil
}

// bodyInterior returns the markup between <body...> and </body>.
func bodyInterior(htmlContent string) (string, error) {
	lowerHTML := strings.ToLower(htmlContent)

	openIdx := strings.Index(lowerHTML, "<body")
	if openIdx == -1 {
		return "", ErrTemplateBody
	}
	closeTag := strings.Index(htmlContent[openIdx:], ">")
	if closeTag == -1 {
		return "", ErrTemplateBody
	}
	start := openIdx + closeTag + 1

	endIdx := strings.Index(lowerHTML[start:], "</body>")
	if endIdx == -1 {
		return "", ErrTemplateBody
	}

	return htmlContent[start : start+endIdx], nil
}

// Compile-time interface check.
var _ certificateComposer = (*assetComposer)(nil)
