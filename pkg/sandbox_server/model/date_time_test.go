package model_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

func TestDateTimeJSON(t *testing.T) {
	type testStruct struct {
		DateTime model.DateTime `json:"date_time"`
	}

	dateTimeString := `"2021-03-31T15:04:05+08:00"`
	jsonString := fmt.Sprintf(`{"date_time":%s}`, dateTimeString)

	var ts testStruct
	err := json.Unmarshal([]byte(jsonString), &ts)
	if err != nil {
		t.Fatal(err)
	}

	newJsonStr, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(newJsonStr) != jsonString {
		t.Fatal("JSON marshaling/unmarshaling is not consistent")
	}
}

func TestDateTimeNaiveIsUTC(t *testing.T) {
	for _, s := range []string{"2025-08-01T16:28:44", "2025-08-01T16:28:44.123456", "2025-08-01 16:28:44"} {
		dt, err := model.NewDateTimeFromString(s)
		if err != nil {
			t.Fatal(err)
		}
		expected := time.Date(2025, 8, 1, 16, 28, 44, 0, time.UTC)
		if !dt.GetTime().Truncate(time.Second).Equal(expected) {
			t.Fatalf("unexpected time %v parsed from %q", dt.GetTime(), s)
		}
	}

	if _, err := model.NewDateTimeFromString("yesterday"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestDateJson(t *testing.T) {
	type testStruct struct {
		Date model.Date `json:"date"`
	}

	jsonString := `{"date":"2021-03-31"}`

	var ts testStruct
	if err := json.Unmarshal([]byte(jsonString), &ts); err != nil {
		t.Fatal(err)
	}

	newJsonStr, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(newJsonStr) != jsonString {
		t.Fatal("JSON marshaling/unmarshaling is not consistent")
	}
}

func TestTimeOfDay(t *testing.T) {
	type testStruct struct {
		Start model.TimeOfDay `json:"start"`
		End   model.TimeOfDay `json:"end"`
	}

	var ts testStruct
	if err := json.Unmarshal([]byte(`{"start":"06:00","end":"17:30:15"}`), &ts); err != nil {
		t.Fatal(err)
	}
	if !ts.Start.Before(ts.End) {
		t.Fatal("start should be before end")
	}

	raw, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"start":"06:00:00","end":"17:30:15"}` {
		t.Fatalf("unexpected json %s", raw)
	}
}

func TestCombineDateTime(t *testing.T) {
	d := model.NewDateFromStringNoError("2025-07-22")
	dt := model.CombineDateTime(d, model.NewTimeOfDay(17, 0, 0))
	if dt.String() != "2025-07-22T17:00:00Z" {
		t.Fatalf("unexpected combined date time %s", dt)
	}
}
