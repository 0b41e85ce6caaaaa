package inngestfiledata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"golang.org/x/sync/errgroup"
	"gopkg.in/ghodss/yaml.v1"

	"github.com/inngest/inngest-sdk-go/inngestevent"
)

// ReadFile reads the events in a single JSON or YAML file.
func ReadFile(path string) ([]inngestevent.Payload, error) {
	rawData, err := os.ReadFile(path) //nolint:gosec // G304: reading a caller-specified file is the point
	if err != nil {
		return nil, fmt.Errorf("unable to read file: %w", err)
	}
	if !detectJSON(rawData) {
		if rawData, err = yaml.YAMLToJSON(rawData); err != nil {
			return nil, fmt.Errorf("error parsing file: %w", err)
		}
	}
	payloads, err := parsePayloads(rawData)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}
	return payloads, nil
}

// ReadFiles reads all of the files concurrently and returns their events in the order of the paths. If
// any file cannot be read or parsed, it returns the first such error and no events.
func ReadFiles(paths []string) ([]inngestevent.Payload, error) {
	results := make([][]inngestevent.Payload, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			payloads, err := ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w [%s]", err, path)
			}
			results[i] = payloads
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all []inngestevent.Payload
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

func detectJSON(rawData []byte) bool {
	trimmed := bytes.TrimLeftFunc(rawData, unicode.IsSpace)
	return bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))
}

func parsePayloads(jsonData []byte) ([]inngestevent.Payload, error) {
	if bytes.HasPrefix(bytes.TrimLeftFunc(jsonData, unicode.IsSpace), []byte("[")) {
		var payloads []inngestevent.Payload
		if err := json.Unmarshal(jsonData, &payloads); err != nil {
			return nil, err
		}
		return payloads, nil
	}
	var payload inngestevent.Payload
	if err := json.Unmarshal(jsonData, &payload); err != nil {
		return nil, err
	}
	return []inngestevent.Payload{payload}, nil
}

func absFilePaths(paths []string) ([]string, error) {
	absPaths := make([]string, 0, len(paths))
	for _, p := range paths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("unable to determine absolute path for '%s'", p)
		}
		absPaths = append(absPaths, absPath)
	}
	return absPaths, nil
}
