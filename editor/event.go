package editor

import "github.com/benoitkugler/bezedit/bezpath"

// Event is one input delivered to the editor.
type Event interface {
	isEvent()
}

type PointerPressed struct{ X, Y float64 }

type PointerMoved struct{ X, Y float64 }

type PointerReleased struct{ X, Y float64 }

// PrecisionApplied carries the raw content of the precision field.
type PrecisionApplied struct{ Text string }

type StrokeModeSet struct{ On bool }

type StrokesCleared struct{}

func (PointerPressed) isEvent()   {}
func (PointerMoved) isEvent()     {}
func (PointerReleased) isEvent()  {}
func (PrecisionApplied) isEvent() {}
func (StrokeModeSet) isEvent()    {}
func (StrokesCleared) isEvent()   {}

// Handle dispatches one event.
func (e *Editor) Handle(ev Event) {
	switch ev := ev.(type) {
	case PointerPressed:
		e.PointerDown(ev.X, ev.Y)
	case PointerMoved:
		e.PointerMove(ev.X, ev.Y)
	case PointerReleased:
		e.PointerUp(ev.X, ev.Y)
	case PrecisionApplied:
		e.SetPrecision(ev.Text)
	case StrokeModeSet:
		e.SetStrokeMode(ev.On)
	case StrokesCleared:
		e.ClearStrokes()
	}
}

// DefaultLayout returns the ten points of the startup chain (three segments).
func DefaultLayout() *bezpath.Points {
	pts, err := bezpath.NewPoints([]bezpath.Point{
		{X: 100, Y: 100}, {X: 400, Y: 20}, {X: 50, Y: 480}, {X: 400, Y: 400},
		{X: 800, Y: 300}, {X: 500, Y: 100}, {X: 800, Y: 200}, {X: 1000, Y: 500},
		{X: 900, Y: 650}, {X: 500, Y: 700},
	})
	if err != nil {
		panic(err) // constant input
	}
	return pts
}
