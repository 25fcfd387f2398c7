package model

import (
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
)

type ErrorResponse struct {
	Error string `json:"detail"`
}

type TuningsResponse struct {
	Categories []tuning.Category `json:"categories"`
	Tunings    []tuning.Preset   `json:"tunings"`
}

type NoteResponse struct {
	Tuning tuning.ID  `json:"tuning"`
	String int        `json:"string"`
	Fret   int        `json:"fret"`
	Note   pitch.Note `json:"note"`
	Label  pitch.Name `json:"label"`
}

type TypeInfo struct {
	ID        theory.Type `json:"id"`
	Kind      theory.Kind `json:"kind"`
	Label     string      `json:"label"`
	Intervals []int       `json:"intervals"`
}

type TypesResponse struct {
	Types      []TypeInfo        `json:"types"`
	Categories []theory.Category `json:"categories"`
	Common     []theory.Type     `json:"common"`
}

type SelectionResponse struct {
	Selection theory.Selection    `json:"selection"`
	Spelled   []pitch.Name        `json:"spelled"`
	Degrees   []theory.DegreeInfo `json:"degrees"`
}

type IdentifyRequestBody struct {
	Notes []string `json:"notes"`
}

type IdentifyResponse struct {
	Matches []theory.Selection `json:"matches"`
}

type FretboardResponse struct {
	Board       fretboard.Board `json:"board"`
	Highlighted []pitch.Note    `json:"highlighted"`
}
