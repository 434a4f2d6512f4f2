package cmd

import (
	"log"
	"runtime"

	"github.com/IGS/ISCA/config"
	"github.com/IGS/ISCA/internal/assess"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assessCmd represents the assess command
var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess per-locus alignment reports and write the best-hit table",
	Long: `Assess walks the alignment directory of every locus in the assembly map,
parses each pairwise alignment report between the assembled sequence and a
candidate reference isolate, and writes one row per representative hit to a
tab-separated output table.

The columns of the output table are:

  pct_identity  coverage  length  isolate  ref_length  path

where coverage is the ungapped reference length over the ungapped assembled
length. For scaffold assemblies a trailing gap-free identity column is added:
the identity computed only at reference bases, which ignores any internal
regions present in the scaffold but absent from the reference.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()
		if err := assess.Assess(c); err != nil {
			log.Fatalf("failed to assess alignments: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	// Flags for the input map, the alignment tree, and the output table
	assessCmd.Flags().StringP("map", "m", "", "path to the tab-separated assembly map (first column = locus id)")
	assessCmd.Flags().StringP("alignments", "a", "", "path to the directory holding one alignment directory per locus")
	assessCmd.Flags().StringP("out", "o", "", "path to the output table to write")
	assessCmd.Flags().IntP("cpus", "c", runtime.NumCPU(), "number of loci to assess in parallel")
	assessCmd.Flags().StringP("priority", "p", "", "optional isolate prefix, only alignment files starting with it are assessed")
	assessCmd.Flags().Bool("best-only", true, "report only the best hit per locus instead of every hit")
	assessCmd.Flags().StringP("type", "t", "", "assembly type that produced the sequences: 'contig' or 'scaffold'")
	assessCmd.Flags().BoolP("quiet", "q", false, "suppress the progress bar")

	// Mark required flags
	assessCmd.MarkFlagRequired("map")
	assessCmd.MarkFlagRequired("alignments")
	assessCmd.MarkFlagRequired("out")
	assessCmd.MarkFlagRequired("type")

	// Bind the parameters to viper
	viper.BindPFlag("map", assessCmd.Flags().Lookup("map"))
	viper.BindPFlag("alignments", assessCmd.Flags().Lookup("alignments"))
	viper.BindPFlag("out", assessCmd.Flags().Lookup("out"))
	viper.BindPFlag("cpus", assessCmd.Flags().Lookup("cpus"))
	viper.BindPFlag("priority", assessCmd.Flags().Lookup("priority"))
	viper.BindPFlag("best-only", assessCmd.Flags().Lookup("best-only"))
	viper.BindPFlag("type", assessCmd.Flags().Lookup("type"))
	viper.BindPFlag("quiet", assessCmd.Flags().Lookup("quiet"))
}
