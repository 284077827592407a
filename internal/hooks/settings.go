package hooks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StopEvent is the settings.json hook event the guard registers under.
const StopEvent = "Stop"

// marker identifies reviewguard-owned hook commands inside settings.json.
const marker = "reviewguard"

// Settings is a Claude settings.json document. Only the hooks section is
// interpreted; everything else is preserved verbatim across save.
type Settings struct {
	Hooks map[string][]HookEntry

	raw map[string]any
}

// HookEntry is one matcher group under a hook event.
type HookEntry struct {
	Matcher string        `json:"matcher"`
	Hooks   []HookCommand `json:"hooks"`
}

// HookCommand is a single command hook.
type HookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// LoadSettings reads a settings.json file. A missing file yields empty
// settings so install can create it.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{
		Hooks: make(map[string][]HookEntry),
		raw:   make(map[string]any),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := json.Unmarshal(data, &s.raw); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	if hooksRaw, ok := s.raw["hooks"]; ok {
		// Round-trip the hooks section through JSON into typed form.
		hooksData, err := json.Marshal(hooksRaw)
		if err != nil {
			return nil, fmt.Errorf("reencode hooks: %w", err)
		}
		if err := json.Unmarshal(hooksData, &s.Hooks); err != nil {
			return nil, fmt.Errorf("parse hooks: %w", err)
		}
	}

	return s, nil
}

// Save writes the settings file, creating the parent directory if needed.
func (s *Settings) Save(path string) error {
	if s.raw == nil {
		s.raw = make(map[string]any)
	}
	if len(s.Hooks) > 0 {
		s.raw["hooks"] = s.Hooks
	} else {
		delete(s.raw, "hooks")
	}

	data, err := json.MarshalIndent(s.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("ensure settings dir: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// isOurs reports whether a hook entry carries any reviewguard command.
func isOurs(entry HookEntry) bool {
	for _, h := range entry.Hooks {
		if strings.Contains(h.Command, marker) {
			return true
		}
	}
	return false
}

// Install merges a Stop hook running command into the settings file.
// Idempotent: an existing reviewguard entry is replaced in place. Returns
// true if the file changed.
func Install(path, command string, timeout int) (bool, error) {
	s, err := LoadSettings(path)
	if err != nil {
		return false, err
	}

	entry := HookEntry{
		Hooks: []HookCommand{{
			Type:    "command",
			Command: command,
			Timeout: timeout,
		}},
	}

	entries := s.Hooks[StopEvent]
	for i, existing := range entries {
		if !isOurs(existing) {
			continue
		}
		if existing.Matcher == entry.Matcher &&
			len(existing.Hooks) == 1 && existing.Hooks[0] == entry.Hooks[0] {
			return false, nil
		}
		entries[i] = entry
		s.Hooks[StopEvent] = entries
		return true, s.Save(path)
	}

	s.Hooks[StopEvent] = append(entries, entry)
	return true, s.Save(path)
}

// Uninstall removes reviewguard entries from the Stop event, leaving all
// other hooks alone. Returns true if the file changed.
func Uninstall(path string) (bool, error) {
	s, err := LoadSettings(path)
	if err != nil {
		return false, err
	}

	entries := s.Hooks[StopEvent]
	kept := entries[:0]
	for _, entry := range entries {
		if !isOurs(entry) {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return false, nil
	}

	if len(kept) == 0 {
		delete(s.Hooks, StopEvent)
	} else {
		s.Hooks[StopEvent] = kept
	}

	return true, s.Save(path)
}

// Installed reports whether a reviewguard Stop hook is present.
func Installed(path string) (bool, error) {
	s, err := LoadSettings(path)
	if err != nil {
		return false, err
	}
	for _, entry := range s.Hooks[StopEvent] {
		if isOurs(entry) {
			return true, nil
		}
	}
	return false, nil
}
