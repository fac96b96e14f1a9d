package main

import (
	"fmt"

	"github.com/Miegu/Space-Architects/pkg/advisor"
	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/compliance"
	"github.com/Miegu/Space-Architects/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", e.FieldPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.FieldPath != "" {
				fmt.Printf("    -> %s = %v\n", w.FieldPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printComplianceReport(r *compliance.Report) {
	fmt.Println("Habitability Compliance Report")
	fmt.Println("==============================")
	fmt.Println()

	fmt.Printf("%-22s %8s %8s %6s  %s\n", "Category", "Score", "Weight", "Pass", "Detail")
	fmt.Printf("%-22s %8s %8s %6s  %s\n", "----------------------", "--------", "--------", "------", "------")
	for _, name := range compliance.CategoryOrder {
		c, ok := r.Categories[name]
		if !ok {
			continue
		}
		fmt.Printf("%-22s %8.1f %8.0f %6s  %s\n", c.Name, c.RawScore, c.Weight, passMark(c.Passed), c.Message)
	}

	fmt.Println()
	fmt.Printf("Overall: %d / 100\n", r.OverallScore)
}

func passMark(passed bool) string {
	if passed {
		return "yes"
	}
	return "no"
}

func printRecommendations(recs []advisor.Recommendation) {
	fmt.Printf("Recommendations (%d):\n", len(recs))
	for _, rec := range recs {
		fmt.Printf("  [%s] %s: %s\n", rec.Priority, rec.Category, rec.Message)
		for _, a := range rec.Actions {
			fmt.Printf("    * %s\n", a)
		}
	}
}

func printRoomTypes(types []catalog.RoomType) {
	fmt.Printf("%-16s %-20s %-10s %8s %8s %8s\n", "ID", "Name", "Category", "Width", "Length", "Volume")
	fmt.Printf("%-16s %-20s %-10s %8s %8s %8s\n", "----------------", "--------------------", "----------", "--------", "--------", "--------")
	for _, rt := range types {
		fmt.Printf("%-16s %-20s %-10s %8.1f %8.1f %8.1f\n",
			rt.ID, rt.Name, rt.Category, rt.Footprint.Width, rt.Footprint.Length, rt.Volume())
	}
}
