// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package report

import (
	"fmt"
	"strings"
)

// LabelSet holds the localized texts of a workbook.  Total is a format taking
// the number of repetitions.
type LabelSet struct {
	Threads    string
	Size       string
	Elapsed    string
	Total      string
	Mean       string
	Failures   string
	Method     string
	Trial      string
	Kind       string
	ExitCode   string
	Message    string
	Incomplete string
}

var PolishLabels = LabelSet{
	Threads:    "Liczba wątków",
	Size:       "Liczba niewiadomych",
	Elapsed:    "Czas wykonywania [ms]",
	Total:      "Czas wykonywania %d rozwiązań układu równań [ms]",
	Mean:       "Średni czas pojedynczego rozwiązania układu [ms]",
	Failures:   "Błędy",
	Method:     "Metoda",
	Trial:      "Próba",
	Kind:       "Rodzaj",
	ExitCode:   "Kod wyjścia",
	Message:    "Komunikat",
	Incomplete: "WYNIKI NIEKOMPLETNE"}

var EnglishLabels = LabelSet{
	Threads:    "Threads",
	Size:       "Unknowns",
	Elapsed:    "Execution time [ms]",
	Total:      "Execution time of %d solutions [ms]",
	Mean:       "Mean time of a single solution [ms]",
	Failures:   "Failures",
	Method:     "Method",
	Trial:      "Trial",
	Kind:       "Kind",
	ExitCode:   "Exit code",
	Message:    "Message",
	Incomplete: "INCOMPLETE RESULTS"}

// LabelsFor returns the labels of language "pl" or "en".
func LabelsFor(lang string) (LabelSet, error) {
	switch strings.ToLower(lang) {
	case "pl", "":
		return PolishLabels, nil
	case "en":
		return EnglishLabels, nil
	}
	return LabelSet{}, fmt.Errorf("no labels for language %q", lang)
}

// Header gives the header row of a method sheet.  With more than one
// repetition, the sheet has both the total and the mean column.
func (l LabelSet) Header(reps int) []string {
	if reps > 1 {
		return []string{l.Threads, l.Size, fmt.Sprintf(l.Total, reps), l.Mean}
	}
	return []string{l.Threads, l.Size, l.Elapsed}
}

// FailureHeader gives the header row of the failures sheet.
func (l LabelSet) FailureHeader() []string {
	return []string{l.Method, l.Threads, l.Size, l.Trial, l.Kind, l.ExitCode, l.Message}
}
