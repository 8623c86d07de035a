// Copyright 2025 nuls Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tushyagupta81/nuls/internal/config"
	"github.com/tushyagupta81/nuls/internal/listing"
	"github.com/tushyagupta81/nuls/internal/render"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbose bool
	cfg     config.Config
)

// SetVersion sets the version info for --version flag
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

// getVersionString returns the version string with build info
func getVersionString() string {
	buildDate := formatBuildDate(date)
	if strings.HasSuffix(version, "-dev") {
		return fmt.Sprintf("%s (%s, commit: %s)", version, buildDate, commit)
	}
	return fmt.Sprintf("%s (%s)", version, buildDate)
}

// formatBuildDate converts epoch timestamp to readable date
func formatBuildDate(epoch string) string {
	ts, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return epoch
	}
	return time.Unix(ts, 0).Format("2006-01-02")
}

var rootCmd = &cobra.Command{
	Use:   "nuls [path]",
	Short: "ls -la in a table, in the style of nu ls",
	Long: `List a directory's entries as a color-coded table with permissions,
size, owner, name, type and modification time. Defaults to the current
directory when no path is given.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		log.SetOutput(os.Stderr)
		log.SetLevel(cfg.LogLevel())
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: runList,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("nuls version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runList(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	out := cmd.OutOrStdout()
	r := render.New(out, cfg.ColorMode())

	// Only the two top-level path problems surface as messages; anything
	// below the whole-directory level degrades silently.
	exists, err := listing.PathExists(path)
	if err != nil {
		log.Debugf("checking %s: %v", path, err)
		fmt.Fprintln(out, r.Error("Error reading directory"))
		return nil
	}
	if !exists {
		fmt.Fprintln(out, r.Error("Path does not exist"))
		return nil
	}

	formatter := listing.NewFormatter(listing.OSIdentity(), time.UTC)
	entries := listing.ReadEntries(path)
	records := make([]listing.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, formatter.Format(e.Name, e.Meta))
	}

	fmt.Fprintln(out, r.Table(records))
	return nil
}
