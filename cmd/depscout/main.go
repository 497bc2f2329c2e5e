package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depscout/depscout-core/depscout"
	"github.com/depscout/depscout-core/providers/parsers"
)

var (
	manifestPath string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "depscout",
		Short: "Record and track semantic-version tagged dependencies",
		Long:  "depscout resolves the latest tagged version of a remote repository, recommends an update constraint for it and tracks recorded dependencies for new releases.",
	}

	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "f", "./depscout.yml", "Dependency manifest path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	latestCmd := &cobra.Command{
		Use:   "latest <repository>",
		Short: "Print the latest tagged version and the recommended constraint",
		Args:  cobra.ExactArgs(1),
		RunE:  runLatest,
	}

	addCmd := &cobra.Command{
		Use:   "add <repository>",
		Short: "Resolve a repository and record it in the manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report the latest versions for recorded dependencies",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}

	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLatest(cmd *cobra.Command, args []string) error {
	res, err := depscout.NewResolver(nil).Resolve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	fmt.Printf("%s %s %s\n", res.Repository, res.Version, res.Constraint)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	log := func(format string, args ...interface{}) {
		if verbose {
			fmt.Printf(format+"\n", args...)
		}
	}

	res, err := depscout.NewResolver(nil).Resolve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}
	log("Resolved %s to %s (%s)", res.Repository, res.Version, res.Constraint)

	mp := parsers.NewManifestParser(manifestPath)
	manifest, err := mp.Parse()
	if err != nil {
		if err != parsers.ErrFileNotFound {
			return fmt.Errorf("reading manifest: %w", err)
		}
		log("Manifest %s not found, starting a new one", manifestPath)
		manifest = &parsers.Manifest{}
	}

	manifest.Add(parsers.Dependency{
		Name:       res.Title,
		Repository: res.Repository,
		Constraint: res.Constraint,
	})

	if err := mp.Save(manifest); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	fmt.Printf("Recorded %s (%s)\n", res.Repository, res.Constraint)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	mp := parsers.NewManifestParser(manifestPath)
	manifest, err := mp.Parse()
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	if len(manifest.Dependencies) == 0 {
		return fmt.Errorf("no dependencies recorded in %s", manifestPath)
	}

	updates, err := depscout.NewGitHubUpdatesChecker(nil).LastUpdates(cmd.Context(), manifest.Dependencies)
	if err != nil {
		return err
	}

	for _, u := range updates {
		status := "ok"
		if !u.Compatible {
			status = "outdated"
		}
		fmt.Printf("%-40s %-12s %-12s %s\n", u.Repository, u.Latest, u.Constraint, status)
	}
	return nil
}
