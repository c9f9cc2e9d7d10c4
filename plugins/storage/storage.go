// Copyright 2026 tea-effect authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package storage is a file-backed persistence layer standing in for a
// browser's localStorage: each key is one JSON file under a root
// directory, written atomically so a crash mid-write never leaves a
// corrupt value behind.
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	tea "github.com/savkelita/tea-effect"
)

// Store roots a set of keyed JSON values at dir.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. dir is created lazily on first Save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) pathFor(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save builds a Cmd that marshals value as JSON and writes it to key,
// dispatching onSuccess() or onFailure(err).
func Save[Msg, T any](s *Store, key string, value T, onSuccess func() Msg, onFailure func(error) Msg) tea.Cmd[Msg] {
	return tea.AttemptWith[Msg](tea.Task[struct{}](func(context.Context) (struct{}, error) {
		return struct{}{}, s.write(key, value)
	}), func(struct{}) Msg { return onSuccess() }, onFailure)
}

// Load builds a Cmd that reads key and unmarshals it into a T, dispatching
// onSuccess(value) or onFailure(err). A missing key is reported as an
// *os.PathError through onFailure, same as any other read failure.
func Load[Msg any, T any](s *Store, key string, onSuccess func(T) Msg, onFailure func(error) Msg) tea.Cmd[Msg] {
	return tea.AttemptWith[Msg](tea.Task[T](func(context.Context) (T, error) {
		return readInto[T](s, key)
	}), onSuccess, onFailure)
}

// Remove builds a Cmd that deletes key, treating a missing key as success.
func Remove[Msg any](s *Store, key string, onSuccess func() Msg, onFailure func(error) Msg) tea.Cmd[Msg] {
	return tea.AttemptWith[Msg](tea.Task[struct{}](func(context.Context) (struct{}, error) {
		err := os.Remove(s.pathFor(key))
		if err != nil && os.IsNotExist(err) {
			err = nil
		}
		return struct{}{}, err
	}), func(struct{}) Msg { return onSuccess() }, onFailure)
}

func (s *Store) write(key string, value any) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.pathFor(key))
}

func readInto[T any](s *Store, key string) (T, error) {
	var v T
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	return v, nil
}
