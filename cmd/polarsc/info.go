package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/Observe-l/polarsc/polar/kernel"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report the SIMD target and CPU features the kernels see",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(w, "target:  %s\n", kernel.Target())
		fmt.Fprintf(w, "intra:   %v (sizes %v)\n", kernel.DefaultIntra(), kernel.IntraSizes)
		fmt.Fprintf(w, "lanes:   int8=%d int16=%d int32=%d float32=%d float64=%d\n",
			kernel.Lanes[int8](), kernel.Lanes[int16](), kernel.Lanes[int32](),
			kernel.Lanes[float32](), kernel.Lanes[float64]())
		for _, f := range cpuFeatures() {
			fmt.Fprintf(w, "cpu:     %-8s %v\n", f.name, f.on)
		}
		return nil
	},
}

type feature struct {
	name string
	on   bool
}

func cpuFeatures() []feature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []feature{
			{"sse4.1", cpu.X86.HasSSE41},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
			{"avx512bw", cpu.X86.HasAVX512BW},
		}
	case "arm64":
		return []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
		}
	}
	return nil
}
