// Command sniffglue is a multithreaded packet sniffer that never trusts the
// network: the centrifuge decoding pipeline is designed so a malformed or
// hostile packet degrades to an Unknown variant instead of crashing the
// process.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kpcyrd/sniffglue/internal/capture"
	"github.com/kpcyrd/sniffglue/internal/diagnostics"
	"github.com/kpcyrd/sniffglue/internal/dispatch"
	"github.com/kpcyrd/sniffglue/internal/filter"
	"github.com/kpcyrd/sniffglue/internal/render"
	"github.com/kpcyrd/sniffglue/internal/sandbox"
	"github.com/kpcyrd/sniffglue/internal/sandboxcfg"
)

type options struct {
	promisc              bool
	debugging            bool
	jsonOutput           bool
	verbose              int
	readFile             string
	threads              int
	insecureDisableSeccomp bool
	genCompletions       string
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:   "sniffglue [interface]",
		Short: "Multithreaded packet sniffer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var iface string
			if len(args) == 1 {
				iface = args[0]
			}
			return run(opts, iface)
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&opts.promisc, "promisc", "p", false, "Open interface in promiscuous mode")
	flags.BoolVar(&opts.debugging, "debugging", false, "Show debug output instead of the compact view")
	flags.BoolVarP(&opts.jsonOutput, "json", "j", false, "Print packets as json")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Increase noise level that's shown (can be repeated)")
	flags.StringVarP(&opts.readFile, "read", "r", "", "Read a pcap file instead of a live interface")
	flags.IntVarP(&opts.threads, "threads", "n", 0, "Number of worker threads (0 = number of cpus, or 1 with --read)")
	flags.IntVar(&opts.threads, "cpus", 0, "Alias for --threads")
	flags.BoolVar(&opts.insecureDisableSeccomp, "insecure-disable-seccomp", false, "Disable the seccomp sandbox")
	flags.StringVar(&opts.genCompletions, "gen-completions", "", "Generate shell completions (bash|zsh|fish|powershell)")

	if err := root.Execute(); err != nil {
		diagnostics.FatalCode(1, "%v", err)
	}
}

func run(opts *options, iface string) error {
	if opts.genCompletions != "" {
		return genCompletions(opts.genCompletions)
	}

	if !opts.insecureDisableSeccomp {
		if err := sandbox.ApplyStage1(); err != nil {
			return fmt.Errorf("stage1 sandbox: %w", err)
		}
	}

	src, err := openSource(opts, iface)
	if err != nil {
		return err
	}
	defer src.Close()

	if cfg, err := sandboxcfg.Load(); err == nil {
		if err := sandbox.DropPrivileges(cfg.Sandbox); err != nil {
			diagnostics.Warnf("sandbox: privilege drop failed: %v", err)
		}
	}

	if !opts.insecureDisableSeccomp {
		if err := sandbox.ApplyStage2(); err != nil {
			return fmt.Errorf("stage2 sandbox: %w", err)
		}
	}

	workers := opts.threads
	if workers <= 0 {
		if opts.readFile != "" {
			workers = 1
		} else {
			workers = runtime.NumCPU()
		}
	}

	f := filter.New(opts.verbose)
	pool := dispatch.Run(src, workers, f)

	layout := render.Compact
	switch {
	case opts.jsonOutput:
		layout = render.JSON
	case opts.debugging:
		layout = render.Debug
	}

	for raw := range pool.Out {
		line, err := render.Render(raw, layout)
		if err != nil {
			diagnostics.Warnf("render: %v", err)
			continue
		}
		fmt.Println(line)
	}

	return nil
}

func openSource(opts *options, iface string) (*capture.Source, error) {
	if opts.readFile != "" {
		return capture.OpenOffline(opts.readFile)
	}
	if iface == "" {
		return nil, fmt.Errorf("no interface specified and -r not given")
	}
	return capture.OpenLive(capture.Config{Interface: iface, Promisc: opts.promisc, ImmediateMode: true})
}

func genCompletions(shell string) error {
	root := &cobra.Command{Use: "sniffglue"}
	switch shell {
	case "bash":
		return root.GenBashCompletion(os.Stdout)
	case "zsh":
		return root.GenZshCompletion(os.Stdout)
	case "fish":
		return root.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return root.GenPowerShellCompletion(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell %q", shell)
	}
}
