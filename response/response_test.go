/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package response

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dirpx.dev/apperr"
)

func TestFromMessage(t *testing.T) {
	r := FromMessage("created")

	if r.Message != "created" {
		t.Fatalf("message = %q", r.Message)
	}
	if r.Entity != nil || r.Errors != nil {
		t.Fatal("entity and errors must be absent")
	}
	if r.Timestamp.IsZero() {
		t.Fatal("timestamp must be stamped at construction")
	}
	if r.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp location = %v, want UTC", r.Timestamp.Location())
	}
}

func TestWithEntity(t *testing.T) {
	type user struct{ Name string }

	r := WithEntity("found", user{Name: "ada"})
	if r.Entity.(user).Name != "ada" {
		t.Fatalf("entity = %+v", r.Entity)
	}
	if r.Errors != nil {
		t.Fatal("errors must be absent on a success response")
	}
}

func TestFromError(t *testing.T) {
	e := apperr.InternalFromCause(errors.New("boom"))
	r := FromError(e)

	if r.Message != e.Message() {
		t.Fatalf("message = %q, want the error's own message %q", r.Message, e.Message())
	}
	if len(r.Errors) != 1 || r.Errors[0] != e.Details() {
		t.Fatalf("errors = %+v, want singleton of details", r.Errors)
	}
	if r.Entity != nil {
		t.Fatal("entity must be absent on a failure response")
	}
}

func TestFromErrorMessage(t *testing.T) {
	e := apperr.NotFoundByID("404", "User", 42)
	r := FromErrorMessage("request failed", e)

	if r.Message != "request failed" {
		t.Fatalf("message = %q", r.Message)
	}
	if len(r.Errors) != 1 || r.Errors[0] != e.Details() {
		t.Fatalf("errors = %+v", r.Errors)
	}
}

func TestFromErrors_PreservesOrder(t *testing.T) {
	e1 := apperr.ValidationFieldf("010", "name", "%s is required", "name")
	e2 := apperr.ValidationFieldf("011", "age", "must be >= %d", 18)

	r := FromErrors("validation failed", []apperr.Error{e1, e2})
	if len(r.Errors) != 2 {
		t.Fatalf("errors = %+v", r.Errors)
	}
	if r.Errors[0] != e1.Details() || r.Errors[1] != e2.Details() {
		t.Fatalf("order not preserved: %+v", r.Errors)
	}
}

func TestEmptyMessagePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	FromMessage("")
}

func TestJSON_Contract(t *testing.T) {
	tests := []struct {
		name       string
		in         Response
		wantKeys   []string
		absentKeys []string
	}{
		{
			name:       "message only",
			in:         FromMessage("ok"),
			wantKeys:   []string{"message", "timestamp"},
			absentKeys: []string{"entity", "errors"},
		},
		{
			name:       "with entity",
			in:         WithEntity("ok", map[string]string{"id": "7"}),
			wantKeys:   []string{"message", "entity", "timestamp"},
			absentKeys: []string{"errors"},
		},
		{
			name:       "with errors",
			in:         FromError(apperr.ValidationCodef("010", "bad input")),
			wantKeys:   []string{"message", "errors", "timestamp"},
			absentKeys: []string{"entity"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var m map[string]json.RawMessage
			if err := json.Unmarshal(b, &m); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			for _, k := range tt.wantKeys {
				if _, ok := m[k]; !ok {
					t.Fatalf("key %q missing in %s", k, b)
				}
			}
			// Absent optional fields are omitted entirely, never null.
			for _, k := range tt.absentKeys {
				if _, ok := m[k]; ok {
					t.Fatalf("key %q must be omitted in %s", k, b)
				}
			}
		})
	}
}

func TestJSON_TimestampIsUTCOffsetDateTime(t *testing.T) {
	b, err := json.Marshal(FromMessage("ok"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m struct {
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, m.Timestamp)
	if err != nil {
		t.Fatalf("timestamp %q is not RFC 3339: %v", m.Timestamp, err)
	}
	if _, offset := ts.Zone(); offset != 0 {
		t.Fatalf("timestamp %q is not UTC", m.Timestamp)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	in := FromError(apperr.ValidationFieldf("010", "email", "is required"))

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Response
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Message != in.Message {
		t.Fatalf("message = %q, want %q", out.Message, in.Message)
	}
	if len(out.Errors) != 1 || out.Errors[0] != in.Errors[0] {
		t.Fatalf("errors = %+v, want %+v", out.Errors, in.Errors)
	}
	if out.Entity != nil {
		t.Fatal("entity must stay absent across the round trip")
	}
	if !out.Timestamp.Equal(in.Timestamp) {
		t.Fatalf("timestamp = %v, want %v", out.Timestamp, in.Timestamp)
	}
}
