package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/botworld/server/internal/assets"
)

// Engine wraps a single gopher-lua VM for scene-layout scripting.
// Single-goroutine access only (boot path).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. A missing directory is not an error; the engine then runs
// with compiled-in defaults only.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scene scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// SceneParams calls the script-defined scene_params(key) and overlays its
// return table onto defaults. Fields the script omits keep their default.
// When no script defines scene_params, defaults are returned untouched.
func (e *Engine) SceneParams(key string, defaults assets.Params) (assets.Params, error) {
	fn := e.vm.GetGlobal("scene_params")
	if fn == lua.LNil {
		return defaults, nil
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(key)); err != nil {
		return defaults, fmt.Errorf("scene_params(%q): %w", key, err)
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return defaults, fmt.Errorf("scene_params(%q): expected table, got %s", key, ret.Type())
	}

	p := defaults
	intField(tbl, "obstacles", &p.Obstacles)
	intField(tbl, "drifters", &p.Drifters)
	floatField(tbl, "radius_min", &p.RadiusMin)
	floatField(tbl, "radius_max", &p.RadiusMax)
	floatField(tbl, "spread", &p.Spread)
	floatField(tbl, "drift_speed", &p.DriftSpeed)
	return p, nil
}

func intField(tbl *lua.LTable, name string, dst *int) {
	if n, ok := tbl.RawGetString(name).(lua.LNumber); ok {
		*dst = int(n)
	}
}

func floatField(tbl *lua.LTable, name string, dst *float64) {
	if n, ok := tbl.RawGetString(name).(lua.LNumber); ok {
		*dst = float64(n)
	}
}

func (e *Engine) Close() {
	e.vm.Close()
}
