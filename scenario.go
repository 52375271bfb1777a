package sitefx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSteps is returned when a scenario script has no steps.
	ErrNoSteps = errors.New("no steps")
	// ErrUnknownAction is returned for a step whose action is not recognized.
	ErrUnknownAction = errors.New("unknown action")
	// ErrNoMatch is returned when a step's selector matches nothing.
	ErrNoMatch = errors.New("selector matched nothing")
	// ErrNoLoop is returned by a wait step when Run was given no frame loop.
	ErrNoLoop = errors.New("no frame loop to advance")
)

// scenarioStep is a single action in a scenario script.
type scenarioStep struct {
	Action   string  `json:"action" yaml:"action"`
	Selector string  `json:"selector,omitempty" yaml:"selector,omitempty"`
	X        float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y        float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width    float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Key      string  `json:"key,omitempty" yaml:"key,omitempty"`
	Ms       int     `json:"ms,omitempty" yaml:"ms,omitempty"`
}

// Scenario is a scripted sequence of host events, used to replay a visitor
// session against a Page deterministically.
//
//	frameMs: 16
//	steps:
//	  - {action: scroll, y: 600}
//	  - {action: wait, ms: 1500}
//	  - {action: focus, selector: ".milestone[data-pct=40]"}
//	  - {action: key, key: Enter}
//
// Actions: scroll (y), move (x, y), out, focus (selector), tab, blur,
// key (key; "Space" means " "), hide, show, resize (selector, width,
// height), viewport (width, height), wait (ms).
type Scenario struct {
	FrameMs int            `json:"frameMs,omitempty" yaml:"frameMs,omitempty"`
	Steps   []scenarioStep `json:"steps" yaml:"steps"`
}

// LoadScenario parses a JSON or YAML scenario script.
func LoadScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &sc); err != nil {
			return nil, fmt.Errorf("parse scenario: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario: %w", ErrNoSteps)
	}
	return &sc, nil
}

// FrameInterval returns the tick spacing used by wait steps.
func (sc *Scenario) FrameInterval() time.Duration {
	if sc.FrameMs <= 0 {
		return DefaultFrameInterval
	}
	return time.Duration(sc.FrameMs) * time.Millisecond
}

// Run executes every step against page, ticking loop for wait steps. It
// stops at the first failing step or when ctx is done.
func (sc *Scenario) Run(ctx context.Context, page *Page, loop *FrameLoop) error {
	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scenario step %d: %w", i, err)
		}
		if err := sc.step(ctx, page, loop, st); err != nil {
			return fmt.Errorf("scenario step %d (%s): %w", i, st.Action, err)
		}
	}
	return nil
}

func (sc *Scenario) step(ctx context.Context, page *Page, loop *FrameLoop, st scenarioStep) error {
	switch st.Action {
	case "scroll":
		page.InjectScroll(st.Y)
	case "move":
		page.InjectPointerMove(st.X, st.Y)
	case "out":
		page.InjectPointerOut()
	case "focus":
		el := page.Element(st.Selector)
		if el == nil {
			return fmt.Errorf("%w: %q", ErrNoMatch, st.Selector)
		}
		page.InjectFocus(el)
	case "tab":
		page.InjectFocusNext()
	case "blur":
		page.InjectBlur()
	case "key":
		key := st.Key
		if key == "Space" {
			key = " "
		}
		page.InjectKey(key)
	case "hide":
		page.InjectVisibility(true)
	case "show":
		page.InjectVisibility(false)
	case "resize":
		el := page.Element(st.Selector)
		if el == nil {
			return fmt.Errorf("%w: %q", ErrNoMatch, st.Selector)
		}
		page.InjectResize(el, st.Width, st.Height)
	case "viewport":
		page.InjectViewport(st.Width, st.Height)
	case "wait":
		if loop == nil {
			return ErrNoLoop
		}
		step := sc.FrameInterval()
		total := time.Duration(st.Ms) * time.Millisecond
		for elapsed := time.Duration(0); elapsed < total; elapsed += step {
			if err := ctx.Err(); err != nil {
				return err
			}
			loop.Advance(step)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, st.Action)
	}
	return nil
}
