package system

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bosshex/hex"
	"github.com/milk9111/bosshex/prefabs"
)

const intensityDispatchScript = `
__intensity := intensity(__seconds)
`

// ScriptCurve is a meteor intensity curve defined by a tengo script exposing
// `intensity := func(t) {...}`. Evaluation errors fall back to the built-in
// curve.
type ScriptCurve struct {
	path     string
	compiled *tengo.Compiled
	mu       sync.Mutex
	failed   bool
}

// LoadScriptCurve compiles the named script from prefabs/scripts.
func LoadScriptCurve(path string) (*ScriptCurve, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("intensity: load %s: %w", path, err)
	}
	return NewScriptCurve(path, src)
}

func NewScriptCurve(path string, src []byte) (*ScriptCurve, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + intensityDispatchScript))
	_ = script.Add("__seconds", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("intensity: compile %s: %w", path, err)
	}
	return &ScriptCurve{path: path, compiled: compiled}, nil
}

func (c *ScriptCurve) Intensity(seconds float64) float64 {
	if c == nil || c.compiled == nil {
		return hex.EngagementIntensity(seconds)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	v, err := c.eval(seconds)
	if err != nil {
		if !c.failed {
			log.Printf("intensity: %s: %v; using the built-in curve", c.path, err)
			c.failed = true
		}
		return hex.EngagementIntensity(seconds)
	}
	return v
}

func (c *ScriptCurve) eval(seconds float64) (float64, error) {
	if err := c.compiled.Set("__seconds", seconds); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, err
	}
	out := c.compiled.Get("__intensity")
	if out.IsUndefined() {
		return 0, fmt.Errorf("intensity returned nothing")
	}
	return out.Float(), nil
}
