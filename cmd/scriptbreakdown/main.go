/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"scriptbreakdown/internal/cache"
	"scriptbreakdown/internal/config"
	"scriptbreakdown/internal/export"
	"scriptbreakdown/internal/extract"
	applog "scriptbreakdown/internal/log"
	"scriptbreakdown/internal/screenplay"
	"scriptbreakdown/internal/version"
	"scriptbreakdown/internal/vfx"
)

func usage() {
	fmt.Println("scriptbreakdown — screenplay structural parser and VFX breakdown")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  scriptbreakdown version|-v|--version       Show version")
	fmt.Println("  scriptbreakdown parse [flags] <script>     Parse a screenplay and export the breakdown")
	fmt.Println("  scriptbreakdown formats                    List supported input formats")
	fmt.Println("  scriptbreakdown cache-purge                Drop all cached parse results")
	fmt.Println()
	fmt.Println("Parse flags:")
	fmt.Println("  -title <name>      Script title (default: file name)")
	fmt.Println("  -json <path>       Write full breakdown as JSON")
	fmt.Println("  -csv <path>        Write scene table as CSV")
	fmt.Println("  -html <path>       Write self-contained HTML report")
	fmt.Println("  -pdf <path>        Write printable PDF report")
	fmt.Println("  -taxonomy <path>   Use a custom JSON trigger taxonomy")
	fmt.Println("  -no-cache          Bypass the result cache")
}

func main() {
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")

	args := os.Args
	if len(args) < 2 {
		usage()
		return
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
	case "formats":
		fmt.Println(strings.Join(extract.SupportedExtensions(), "\n"))
	case "cache-purge":
		if err := runCachePurge(l); err != nil {
			l.Error("cache purge failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Cache purged.")
	case "parse":
		if err := runParse(l, args[2:]); err != nil {
			l.Error("parse failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func loadConfig() config.AppConfig {
	path, err := config.Path()
	if err != nil {
		return config.Defaults()
	}
	cfg, err := config.Load(path)
	if err != nil {
		applog.WithComponent("cli").Warn("config unreadable, using defaults", slog.Any("err", err))
		return config.Defaults()
	}
	return cfg
}

func runCachePurge(l *slog.Logger) error {
	cfg := loadConfig()
	dir, err := cfg.CacheDir()
	if err != nil {
		return err
	}
	store, err := cache.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Purge(context.Background())
}

func runParse(l *slog.Logger, argv []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	title := fs.String("title", "", "script title")
	jsonOut := fs.String("json", "", "JSON output path")
	csvOut := fs.String("csv", "", "CSV output path")
	htmlOut := fs.String("html", "", "HTML output path")
	pdfOut := fs.String("pdf", "", "PDF output path")
	taxonomyPath := fs.String("taxonomy", "", "custom taxonomy JSON")
	noCache := fs.Bool("no-cache", false, "bypass the result cache")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		usage()
		return fmt.Errorf("parse requires exactly one script file")
	}
	scriptPath := fs.Arg(0)

	cfg := loadConfig()
	if *taxonomyPath == "" {
		*taxonomyPath = cfg.Parsing.TaxonomyFile
	}

	taxonomy := vfx.DefaultTaxonomy
	taxonomyVersion := vfx.TaxonomyVersion
	if *taxonomyPath != "" {
		var err error
		taxonomy, taxonomyVersion, err = vfx.LoadTaxonomy(*taxonomyPath)
		if err != nil {
			return fmt.Errorf("load taxonomy: %w", err)
		}
		l.Info("using custom taxonomy", slog.String("path", *taxonomyPath), slog.String("version", taxonomyVersion))
	}

	text, err := extract.Text(scriptPath)
	if err != nil {
		return err
	}
	if *title == "" {
		base := filepath.Base(scriptPath)
		*title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	ctx := context.Background()
	var store *cache.Store
	if cfg.Cache.Enabled && !*noCache {
		dir, derr := cfg.CacheDir()
		if derr == nil {
			if s, oerr := cache.Open(dir); oerr == nil {
				store = s
				defer store.Close()
			} else {
				l.Warn("cache unavailable", slog.Any("err", oerr))
			}
		}
	}

	var doc *screenplay.Document
	if store != nil {
		if cached, ok := store.Get(ctx, text, taxonomyVersion); ok && cached.Title == *title {
			l.Info("cache hit", slog.String("key", cache.Key(text, taxonomyVersion)))
			doc = cached
		}
	}
	if doc == nil {
		doc = screenplay.ParseWithTaxonomy(text, *title, taxonomy)
		if store != nil {
			if err := store.Put(ctx, text, taxonomyVersion, doc); err != nil {
				l.Warn("cache store failed", slog.Any("err", err))
			}
		}
	}

	for _, w := range doc.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	fmt.Printf("%s: %d scenes, %d characters, est. %d pages\n",
		doc.Title, len(doc.Scenes), len(doc.Characters), doc.PageEstimate)

	wrote := false
	if *jsonOut != "" {
		if err := export.SaveJSON(*jsonOut, doc); err != nil {
			return err
		}
		fmt.Println("Wrote", *jsonOut)
		wrote = true
	}
	if *csvOut != "" {
		if err := export.SaveCSV(*csvOut, doc); err != nil {
			return err
		}
		fmt.Println("Wrote", *csvOut)
		wrote = true
	}
	if *htmlOut != "" {
		if err := export.SaveHTML(*htmlOut, doc); err != nil {
			return err
		}
		fmt.Println("Wrote", *htmlOut)
		wrote = true
	}
	if *pdfOut != "" {
		if err := export.SavePDF(*pdfOut, doc); err != nil {
			return err
		}
		fmt.Println("Wrote", *pdfOut)
		wrote = true
	}
	if !wrote {
		// no output flag: dump JSON to stdout
		return export.WriteJSON(os.Stdout, doc)
	}
	return nil
}
