// cmd/tools/intent-probe/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"concierge-workers/internal/common/logger"
	"concierge-workers/internal/device"
	"concierge-workers/internal/dispatch"
	"concierge-workers/internal/intent"
	"concierge-workers/internal/venue"
	"concierge-workers/pkg/registry"
)

const iPhoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148"

type probeFlags struct {
	profile   *string
	userAgent *string
	venueID   *string
	venues    *string
	delay     *time.Duration
	hidden    *bool
}

func bindProbeFlags(fs *flag.FlagSet) probeFlags {
	return probeFlags{
		profile:   fs.String("profile", "simple", "Classifier profile (simple, booking)"),
		userAgent: fs.String("ua", iPhoneUA, "User-agent of the requesting device; empty means desktop"),
		venueID:   fs.String("venue", "", "Context venue ID"),
		venues:    fs.String("venues", "", "Path to a venues JSON file; empty uses the built-in list"),
		delay:     fs.Duration("delay", dispatch.DefaultFallbackDelay, "Web fallback delay"),
		hidden:    fs.Bool("hidden", false, "Report the page as hidden when the fallback timer fires"),
	}
}

func main() {
	classifyCmd := flag.NewFlagSet("classify", flag.ExitOnError)
	linkCmd := flag.NewFlagSet("link", flag.ExitOnError)
	dispatchCmd := flag.NewFlagSet("dispatch", flag.ExitOnError)
	workersCmd := flag.NewFlagSet("workers", flag.ExitOnError)

	classifyProfile := classifyCmd.String("profile", "simple", "Classifier profile (simple, booking)")
	linkFlags := bindProbeFlags(linkCmd)
	dispatchFlags := bindProbeFlags(dispatchCmd)
	registryPath := workersCmd.String("path", "configs/activity-registry.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "classify":
		classifyCmd.Parse(os.Args[2:])
		err = classify(*classifyProfile, utterance(classifyCmd))
	case "link":
		linkCmd.Parse(os.Args[2:])
		err = probe(linkFlags, utterance(linkCmd), false)
	case "dispatch":
		dispatchCmd.Parse(os.Args[2:])
		err = probe(dispatchFlags, utterance(dispatchCmd), true)
	case "workers":
		workersCmd.Parse(os.Args[2:])
		err = listWorkers(*registryPath)
	default:
		help()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func utterance(fs *flag.FlagSet) string {
	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "Error: an utterance is required")
		fs.Usage()
		os.Exit(1)
	}
	return text
}

func classify(profileName, text string) error {
	profile, ok := intent.ParseProfile(profileName)
	if !ok {
		return fmt.Errorf("unknown profile %q", profileName)
	}

	classifier := intent.NewClassifier(nil)
	if profile == intent.ProfileBooking {
		b := classifier.ClassifyBooking(text)
		return printJSON(map[string]interface{}{
			"intent":     b,
			"actionable": intent.IsBookingActionable(b),
			"summary":    intent.Summarize(b),
		})
	}

	i := classifier.Classify(text)
	return printJSON(map[string]interface{}{
		"intent":     i,
		"actionable": intent.IsActionable(i),
		"summary":    intent.Describe(i),
	})
}

// probe resolves the utterance to a dispatch target. With simulate set it
// also runs the dispatch against a printing navigator and waits for the
// fallback to settle.
func probe(f probeFlags, text string, simulate bool) error {
	profile, ok := intent.ParseProfile(*f.profile)
	if !ok {
		return fmt.Errorf("unknown profile %q", *f.profile)
	}

	log := logger.NewZapAdapter(logger.NewWithOutput("warn", "console", "stderr"))

	var store venue.Store = venue.NewStaticStore(venue.BuiltIn())
	if *f.venues != "" {
		store = venue.NewFileStore(*f.venues, log)
	}
	catalog, err := venue.LoadCatalog(context.Background(), store)
	if err != nil {
		return err
	}

	var nav dispatch.Navigator
	var visibility dispatch.VisibilityProbe
	if simulate {
		nav = printNavigator{start: time.Now()}
		hidden := *f.hidden
		visibility = dispatch.VisibilityFunc(func() bool { return !hidden })
	}

	ctrl := dispatch.NewController(dispatch.Config{FallbackDelay: *f.delay}, nav, visibility, catalog, log)
	class := device.Classify(*f.userAgent)
	classifier := intent.NewClassifier(nil)

	var target *dispatch.Target
	var fallback *dispatch.Fallback
	switch {
	case profile == intent.ProfileBooking && simulate:
		target, fallback, err = ctrl.DispatchBooking(classifier.ClassifyBooking(text), class, *f.venueID)
	case profile == intent.ProfileBooking:
		target, err = ctrl.ResolveBooking(classifier.ClassifyBooking(text), class, *f.venueID)
	case simulate:
		target, fallback, err = ctrl.DispatchIntent(classifier.Classify(text), class, *f.venueID)
	default:
		target, err = ctrl.ResolveIntent(classifier.Classify(text), class, *f.venueID)
	}
	if err != nil {
		return err
	}

	if fallback != nil {
		<-fallback.Done()
	}

	out := map[string]interface{}{
		"platform": class.Kind(),
		"target":   target,
	}
	if simulate {
		out["fallback"] = fallback.Outcome()
	}
	return printJSON(out)
}

func listWorkers(path string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return err
	}
	if err := reg.Validate(); err != nil {
		return err
	}

	fmt.Printf("Registry %s (updated %s)\n", reg.Version, reg.LastUpdated)
	for _, a := range reg.Activities {
		fmt.Printf("  %-20s %-12s timeout=%-5s retries=%d errors=%s\n",
			a.TaskType, a.ImplementationStatus, a.Timeout, a.Retries, strings.Join(a.ErrorCodes, ","))
	}
	return nil
}

// printNavigator writes each navigation with its offset from dispatch.
type printNavigator struct {
	start time.Time
}

func (p printNavigator) Navigate(uri string) {
	fmt.Fprintf(os.Stderr, "[+%4dms] navigate %s\n", time.Since(p.start).Milliseconds(), uri)
}

func (p printNavigator) Open(uri string, newTab bool) {
	fmt.Fprintf(os.Stderr, "[+%4dms] open %s (newTab=%t)\n", time.Since(p.start).Milliseconds(), uri, newTab)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func help() {
	fmt.Println("Usage: intent-probe <command> [options] <utterance>")
	fmt.Println("Commands:")
	fmt.Println("  classify   Classify an utterance and report actionability")
	fmt.Println("  link       Resolve an utterance to a deep link without navigating")
	fmt.Println("  dispatch   Resolve and simulate the native-then-web dispatch")
	fmt.Println("  workers    List the registered job workers")
}
