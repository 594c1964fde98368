package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vitalvas/secretfinder/config"
	"github.com/vitalvas/secretfinder/shamir"
)

// fileReport is one file's recovery outcome. WrongShares and Subset both hold
// external index labels.
type fileReport struct {
	File        string `json:"file"`
	Secret      string `json:"secret"`
	FitCount    int    `json:"fit_count"`
	TotalShares int    `json:"total_shares"`
	WrongShares []int  `json:"wrong_shares"`
	Subset      []int  `json:"subset"`
}

func newFileReport(path string, result shamir.Result) fileReport {
	report := fileReport{
		File:        path,
		Secret:      result.Secret.String(),
		FitCount:    result.FitCount,
		TotalShares: result.Total,
		WrongShares: result.WrongShares,
		Subset:      result.SubsetIndices,
	}

	if report.WrongShares == nil {
		report.WrongShares = []int{}
	}
	if report.Subset == nil {
		report.Subset = []int{}
	}

	return report
}

func writeReports(w io.Writer, output string, reports []fileReport) error {
	if output == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	for i, report := range reports {
		if len(reports) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "File: %s\n", report.File)
		}

		if err := writeText(w, report); err != nil {
			return err
		}
	}

	return nil
}

func writeText(w io.Writer, report fileReport) error {
	wrong := make([]string, len(report.WrongShares))
	for i, index := range report.WrongShares {
		wrong[i] = strconv.Itoa(index)
	}

	_, err := fmt.Fprintf(w,
		"Correct secret (constant term c): %s\nShares fitting polynomial: %d out of %d\nWrong shares (x values): %s\n",
		report.Secret, report.FitCount, report.TotalShares, strings.Join(wrong, ", "))

	return err
}
