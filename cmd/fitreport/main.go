package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	gocert "github.com/VantageDataChat/GoCert"
)

// fitreport prints how each field of each request would be laid out,
// without rendering anything. Useful when tuning a profile's geometry.
func main() {
	configPath := flag.String("config", "certgen.yaml", "configuration file")
	requestsPath := flag.String("requests", "certificates.yaml", "certificate requests file")
	flag.Parse()

	cfg, err := gocert.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := gocert.ValidateProfiles(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}

	reqs, err := gocert.LoadRequests(*requestsPath)
	if err != nil {
		logger.Fatal("load requests", zap.Error(err))
	}

	gen, err := cfg.NewGenerator(logger)
	if err != nil {
		logger.Fatal("create generator", zap.Error(err))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, req := range reqs {
		profile := gocert.Resolve(req.Organization)
		fmt.Fprintf(tw, "%s\t%s\t\t\t\t\n", req.Number, profile.Organization)
		fmt.Fprintln(tw, "  field\tstate\tsize\tlines\textent\tlimit")
		for _, p := range gen.Plan(req) {
			extent, limit := extentOf(p)
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\t%d\t%s\n",
				p.Field, p.Fit.State, p.Fit.Layout.Size, len(p.Fit.Layout.Lines()), extent, limit)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// extentOf returns the measured extent compared by autofit and its bound.
func extentOf(p gocert.FieldPlan) (int, string) {
	switch s := p.Spec.(type) {
	case gocert.BlockField:
		return p.Fit.Layout.Height, fmt.Sprintf("h<=%d", s.Band())
	case gocert.OneLineField:
		return p.Fit.Layout.MaxWidth(), fmt.Sprintf("w<=%d", s.MaxWidth)
	default:
		return p.Fit.Layout.MaxWidth(), "fixed"
	}
}
