package score2pdf

import "fmt"

// defaultFontFamily is the web font used across the certificate layout.
const defaultFontFamily = "Inter"

// Fixed typography sizes in pixels.
const (
	nameFontSize      = 36 // last/first name
	yearFontSize      = 36 // grade label
	honorificFontSize = 29 // さん suffix
)

// Layout constants.
const (
	contentWidthPercent = 77  // name-content width within the ribbon (%)
	nameWidthPx         = 180 // last/first name box width (px)
	baseMarginPx        = 20  // base margin (px)
	nameSpacePx         = 18  // spacing between name elements (px)
)

// buildScoreUpCSS returns the CSS fragment for the "score-up-display"
// template variant: the score display is repositioned and the 点 marker
// gains an UP suffix element.
func buildScoreUpCSS() string {
	return `
/* score-up variant: widened score area */
.score-container {
    position: relative;
    width: 600px;
}

.score {
    width: 485px;
    color: rgba(255,0,0,1);
    position: absolute;
    top: 136px;
    left: 178px;
    text-shadow: 8px 6px 6px rgba(0, 0, 0, 0.25);
    font-family: ` + defaultFontFamily + `;
    font-weight: Bold Italic;
    font-size: 227px;
    opacity: 1;
    text-align: center;
}

.point.point-up {
    position: absolute;
    top: 328px;
    left: 610px;
    display: flex;
    align-items: baseline;
    white-space: nowrap;
    font-family: ` + defaultFontFamily + `;
    font-weight: Bold Italic;
}

.point.point-up .ten {
    font-size: 104px;
    line-height: 1;
    color: black;
}

.point.point-up .up {
    font-size: 60px;
    line-height: 1;
    color: black;
    margin-left: 5px;
}
`
}

// buildRibbonLayoutCSS returns the CSS defining the ribbon banner and the
// fixed-size name, grade, and honorific regions inside it.
func buildRibbonLayoutCSS() string {
	return fmt.Sprintf(`
.ribbon {
    width: 660px;
    height: 106px;
    background-repeat: no-repeat;
    background-position: center center;
    background-size: cover;
    position: absolute;
    top: 446px;
    left: 91px;
    display: flex;
    justify-content: center;
    align-items: flex-end;
}

.name-content {
    display: flex;
    align-items: center;
    justify-content: center;
    width: %d%%;
    height: 66px;
    padding: 0 %dpx;
    box-sizing: border-box;
}

.name-group {
    display: flex;
    align-items: center;
    justify-content: center;
    margin: 0 %dpx;
    flex: 1;
    width: %d%%;
    height: 66px;
}

.sc_year, .honorific {
    color: rgba(255,255,255,1);
    font-family: %s;
    font-weight: Bold Italic;
    white-space: nowrap;
    display: inline-flex;
    align-items: center;
    justify-content: center;
}

.sc_year {
    font-size: %dpx;
    height: %dpx;
    line-height: %dpx;
    min-width: 80px;
    margin-left: %dpx;
}

.honorific {
    font-size: %dpx;
    height: %dpx;
    line-height: %dpx;
    min-width: 50px;
    margin-left: %dpx;
}

.last_name, .first_name {
    display: flex;
    align-items: center;
    justify-content: center;
    width: %dpx;
    height: 40px;
    font-size: %dpx;
    color: rgba(255,255,255,1);
    font-family: %s;
    font-weight: Bold Italic;
    white-space: nowrap;
    text-align: center;
}
`,
		contentWidthPercent, baseMarginPx,
		nameSpacePx, contentWidthPercent,
		defaultFontFamily,
		yearFontSize, yearFontSize, yearFontSize, baseMarginPx,
		honorificFontSize, honorificFontSize, honorificFontSize, nameSpacePx,
		nameWidthPx, nameFontSize, defaultFontFamily)
}

// buildSubjectCSS returns the subject label style. Two-line subjects get
// a multi-line-capable block; others stay on a single line.
func buildSubjectCSS(twoLine bool) string {
	if twoLine {
		return `
.subject {
    position: absolute;
    white-space: pre-line;
    text-align: center;
    width: 150px;
    top: 140px;
    left: 36px;
    line-height: 1.2;
    font-size: 38px;
    display: flex;
    flex-direction: column;
    justify-content: center;
    align-items: center;
    color: rgba(255,255,255,1);
    font-family: ` + defaultFontFamily + `;
    font-weight: Bold Italic;
}
`
	}
	return `
.subject {
    position: absolute;
    white-space: nowrap;
    text-align: center;
    width: 150px;
    top: 155px;
    left: 36px;
    font-size: 38px;
    color: rgba(255,255,255,1);
    font-family: ` + defaultFontFamily + `;
    font-weight: Bold Italic;
}
`
}
