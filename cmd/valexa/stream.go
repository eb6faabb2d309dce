package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/profile"
)

// exitSentinel stops the test stream. It is accepted bare or JSON-quoted.
const exitSentinel = "EXIT"

type envelope struct {
	Type    string `json:"type"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeParams(out io.Writer) error {
	return writeEnvelope(out, envelope{Type: "PARAMS", Data: config.Schema()})
}

func resolveOne(out io.Writer, raw []byte) error {
	req, err := profile.ParseRequest(raw)
	if err != nil {
		return err
	}
	resolved, err := req.Resolve()
	if err != nil {
		return err
	}
	return writeEnvelope(out, envelope{Type: "PROFILE", Data: resolved})
}

// runStream resolves one JSON configuration per input line until the
// exit sentinel or EOF. Bad lines produce an ERROR envelope and the
// stream keeps going.
func runStream(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == exitSentinel || line == `"`+exitSentinel+`"` {
			return nil
		}

		if err := resolveOne(out, []byte(line)); err != nil {
			if werr := writeEnvelope(out, envelope{Type: "ERROR", Message: err.Error()}); werr != nil {
				return werr
			}
		}
	}
	return scanner.Err()
}

func writeEnvelope(out io.Writer, env envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode %s response: %w", env.Type, err)
	}
	_, err = fmt.Fprintln(out, string(payload))
	return err
}
