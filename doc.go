// Package score2pdf turns student score records into formatted
// certificate PDFs. It substitutes record values into an HTML/CSS
// template, inlines the subject's decorative images as data URIs, and
// renders the result through headless Chrome (via go-rod) onto a fixed
// 842x595 canvas.
//
// Single record:
//
//	gen, err := score2pdf.NewGenerator()
//	if err != nil { ... }
//	defer gen.Close()
//
//	pdf, err := gen.Generate(ctx, score2pdf.Record{
//		Subject:      "数学",
//		TestName:     "第1回定期考査",
//		Score:        95,
//		SchoolYear:   "小3",
//		LastName:     "山田",
//		FirstName:    "太郎",
//		TemplateType: score2pdf.TemplateScoreDisplay,
//	})
//
// Bulk input comes from a CSV (UTF-8 or Shift-JIS) or XLSX table with
// the six record columns; ReadTable loads it, Table.Validate checks it
// as a whole, and Generator.GenerateArchive renders every row into one
// zip archive.
package score2pdf
