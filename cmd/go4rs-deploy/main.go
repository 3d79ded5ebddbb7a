// go4rs-deploy copies artifact files (shared libraries, jars, data files)
// into a target directory, either from command-line arguments or from a
// YAML manifest.
//
// Usage:
//
//	go4rs-deploy --target out/ foo.bin bar.so
//	go4rs-deploy --manifest deploy.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go4rs/go4rs/go4rs"
)

func main() {
	var target string
	var manifestPath string

	root := &cobra.Command{
		Use:   "go4rs-deploy [artifacts...]",
		Short: "Deploy artifact files into a target directory",
		Args: func(cmd *cobra.Command, args []string) error {
			if manifestPath == "" && len(args) == 0 {
				return fmt.Errorf("provide artifact paths or --manifest")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if manifestPath != "" {
				m, err := go4rs.LoadManifest(manifestPath)
				if err != nil {
					return err
				}
				if target != "" {
					m.Target = target
				}
				m.Artifacts = append(m.Artifacts, args...)
				deployed, err := m.Apply()
				for _, dest := range deployed {
					fmt.Println(dest)
				}
				return err
			}

			d, err := go4rs.NewDeployer(target)
			if err != nil {
				return err
			}
			for _, artifact := range args {
				dest, err := d.Deploy(artifact)
				if err != nil {
					return err
				}
				fmt.Println(dest)
			}
			return nil
		},
	}

	root.Flags().StringVarP(&target, "target", "t", "", "target directory (default current directory)")
	root.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest listing artifacts to deploy")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
