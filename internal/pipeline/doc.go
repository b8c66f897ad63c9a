// Package pipeline orchestrates the full analysis flow: hue
// classification of every pixel, aggregation into the red-green and
// blue-yellow channels, rule-based diagnosis, and optional minority
// annotation.
//
// The pipeline is deterministic. The same image bytes and the same
// Config always produce an equal Report and, for annotation, a
// byte-identical output image.
//
// # Usage
//
//	cfg := pipeline.DefaultConfig()
//	report, err := pipeline.Analyze(img, cfg)
//	if err != nil {
//		return err
//	}
//	fmt.Println(report.Diagnosis.Type)
package pipeline
