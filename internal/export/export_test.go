package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
)

func solved(steps int) *dynamo.Trajectory {
	l := physics.NewLorenz()
	return integrators.Solve(0, 1, l.DefaultState(), l.Derive, steps)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, solved(10)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "t,x,y,z" {
		t.Errorf("expected header t,x,y,z, got %q", lines[0])
	}
	if len(lines) != 12 {
		t.Errorf("expected 12 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "0,0,1,1.05") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, dynamo.NewTrajectory(0)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "t,x,y,z\n" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	tr := solved(4)
	var buf bytes.Buffer
	data := NewExportData("lorenz", physics.NewLorenz().Params(), tr)
	if err := WriteJSON(&buf, data); err != nil {
		t.Fatal(err)
	}

	var back ExportData
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if back.Steps != 4 || len(back.Samples) != 5 || back.End != 1 {
		t.Errorf("unexpected export %+v", back)
	}
	if back.Params["rho"] != 28 {
		t.Errorf("expected rho 28, got %v", back.Params["rho"])
	}
	if back.Samples[0].Z != 1.05 {
		t.Errorf("expected z0 1.05, got %v", back.Samples[0].Z)
	}
}

func TestSVG(t *testing.T) {
	s := NewSVG(100, 50)
	s.DrawPoint(1, 2)
	s.DrawLine(0, 0, 10, 10)
	if s.Shapes() != 2 {
		t.Errorf("expected 2 shapes, got %d", s.Shapes())
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`width="100"`, `<line x1="0" y1="0" x2="10" y2="10" stroke="#ffffff"/>`, "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}
