package mapping

import (
	"encoding"
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML wearable configuration from the given path.
func LoadFile(path string) (*WearableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wearable config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a WearableConfig.
func Parse(data []byte) (*WearableConfig, error) {
	var cfg WearableConfig

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wearable config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *WearableConfig) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	if cfg.AvatarConfig.ArmatureName == "" {
		cfg.AvatarConfig.ArmatureName = DefaultArmatureName
	}

	if cfg.WearableConfig.ArmatureName == "" {
		cfg.WearableConfig.ArmatureName = DefaultArmatureName
	}
}

// Marshal serializes a WearableConfig to YAML.
func Marshal(cfg *WearableConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a WearableConfig to the given path.
func WriteFile(cfg *WearableConfig, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal wearable config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write wearable config %s: %w", path, err)
	}

	return nil
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// textUnmarshalerHook lets mapstructure decode enum names through UnmarshalText.
func textUnmarshalerHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || !reflect.PointerTo(to).Implements(textUnmarshalerType) {
		return data, nil
	}

	v := reflect.New(to)

	err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(reflect.ValueOf(data).String()))
	if err != nil {
		return nil, err
	}

	return v.Elem().Interface(), nil
}

// DecodeModule decodes the module's untyped settings into out. Fields absent
// from the settings keep the values out already holds. Unknown keys are errors.
func DecodeModule(m *ModuleEntry, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  textUnmarshalerHook,
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder for module %s: %w", m.ModuleName, err)
	}

	if err := dec.Decode(m.Config); err != nil {
		return fmt.Errorf("failed to decode module %s: %w", m.ModuleName, err)
	}

	return nil
}

// ArmatureMapping returns the decoded armatureMapping module, or the defaults
// when the module is absent.
func (c *WearableConfig) ArmatureMapping() (ArmatureMappingConfig, error) {
	out := DefaultArmatureMappingConfig()

	m, ok := c.Module(ModuleArmatureMapping)
	if !ok {
		return out, nil
	}

	err := DecodeModule(m, &out)

	return out, err
}

// CabinetAnim returns the decoded cabinetAnim module, or the defaults when
// the module is absent.
func (c *WearableConfig) CabinetAnim() (CabinetAnimConfig, error) {
	out := DefaultCabinetAnimConfig()

	m, ok := c.Module(ModuleCabinetAnim)
	if !ok {
		return out, nil
	}

	err := DecodeModule(m, &out)

	return out, err
}

// EncodeModule converts typed module settings into a module entry.
func EncodeModule(name string, cfg any) (ModuleEntry, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return ModuleEntry{}, fmt.Errorf("failed to encode module %s: %w", name, err)
	}

	var settings map[string]any
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return ModuleEntry{}, fmt.Errorf("failed to encode module %s: %w", name, err)
	}

	return ModuleEntry{ModuleName: name, Config: settings}, nil
}

// SetModule replaces the first module entry with the same name, or appends it.
func (c *WearableConfig) SetModule(entry ModuleEntry) {
	for i := range c.Modules {
		if c.Modules[i].ModuleName == entry.ModuleName {
			c.Modules[i] = entry
			return
		}
	}

	c.Modules = append(c.Modules, entry)
}
