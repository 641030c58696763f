// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-tally/tally"
)

// Weight is the wire form of one ballot slot: null for no opinion, a
// boolean for approval, or a number. Checkbox strings such as "on" and
// "off" are accepted as booleans.
type Weight tally.Weight

var (
	falseyStrings = map[string]bool{"off": true, "false": true, "False": true, "f": true, "0": true}
	truthyStrings = map[string]bool{"on": true, "true": true, "True": true, "t": true}
)

func (w Weight) MarshalJSON() ([]byte, error) {
	return tally.Weight(w).MarshalJSON()
}

func (w *Weight) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return w.set(raw)
}

func (w *Weight) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return w.set(raw)
}

func (w *Weight) set(raw any) error {
	if err := w.decode(raw); err != nil {
		return err
	}
	if w.Valid && (math.IsNaN(w.Value) || math.IsInf(w.Value, 0)) {
		*w = Weight(tally.Abstain)
		return fmt.Errorf("invalid weight %v", raw)
	}
	return nil
}

func (w *Weight) decode(raw any) error {
	switch v := raw.(type) {
	case nil:
		*w = Weight(tally.Abstain)
	case bool:
		*w = Weight(tally.Approve(v))
	case float64:
		*w = Weight(tally.Score(v))
	case int:
		*w = Weight(tally.Score(float64(v)))
	case int64:
		*w = Weight(tally.Score(float64(v)))
	case uint64:
		*w = Weight(tally.Score(float64(v)))
	case string:
		switch {
		case v == "":
			*w = Weight(tally.Abstain)
		case falseyStrings[v]:
			*w = Weight(tally.Approve(false))
		case truthyStrings[v]:
			*w = Weight(tally.Approve(true))
		default:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", v)
			}
			*w = Weight(tally.Score(f))
		}
	default:
		return fmt.Errorf("invalid weight of type %T", raw)
	}
	return nil
}
