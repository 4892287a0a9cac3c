package javascript

import "github.com/kiteco/jsmin/kite-golib/status"

var (
	parseSection = status.NewSection("lang/javascript (parser)")

	parseDuration = parseSection.SampleDuration("Parse duration")
	parseFailures = parseSection.Ratio("Parse failures")

	minifySection = status.NewSection("lang/javascript (minify)")

	minifyDuration = minifySection.SampleDuration("Transform duration")
	cacheHits      = minifySection.Ratio("Cache hits")
	bytesIn        = minifySection.SampleByte("Input size")
	bytesOut       = minifySection.SampleByte("Output size")
	renamed        = minifySection.Counter("Renamed identifiers")

	minifyStatusCode   = minifySection.Breakdown("Minify endpoint status codes")
	prettifyStatusCode = minifySection.Breakdown("Prettify endpoint status codes")
	checkStatusCode    = minifySection.Breakdown("Check endpoint status codes")
)
