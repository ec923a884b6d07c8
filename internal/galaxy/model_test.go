package galaxy

import (
	"errors"
	"testing"

	"galaxy/internal/core"
)

type viewerEvent struct {
	kind  string
	cloud *PointCloud
}

type recordingViewer struct {
	events  []viewerEvent
	failing bool
	style   Style
}

func (v *recordingViewer) Show(cloud *PointCloud, style Style) error {
	v.events = append(v.events, viewerEvent{"show", cloud})
	v.style = style
	if v.failing {
		return errors.New("no gpu")
	}
	return nil
}

func (v *recordingViewer) Release(cloud *PointCloud) {
	v.events = append(v.events, viewerEvent{"release", cloud})
}

func smallParams() Parameters {
	p := DefaultParameters()
	p.Count = 60
	return p
}

func TestNewModelShowsInitialCloud(t *testing.T) {
	v := &recordingViewer{}
	m, err := NewModel(smallParams(), NewSource(1), v)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.events) != 1 || v.events[0].kind != "show" || v.events[0].cloud != m.Cloud() {
		t.Fatalf("unexpected events %+v", v.events)
	}
	if !v.style.Additive || v.style.DepthWrite || !v.style.VertexColors || v.style.Size != 0.02 {
		t.Fatalf("unexpected style %+v", v.style)
	}
}

func TestApplyShowsNewThenReleasesOld(t *testing.T) {
	v := &recordingViewer{}
	m, err := NewModel(smallParams(), NewSource(1), v)
	if err != nil {
		t.Fatal(err)
	}
	old := m.Cloud()
	next := smallParams()
	next.Count = 80
	if err := m.Apply(next); err != nil {
		t.Fatal(err)
	}
	if len(v.events) != 3 {
		t.Fatalf("expected 3 events, got %+v", v.events)
	}
	if v.events[1].kind != "show" || v.events[1].cloud != m.Cloud() {
		t.Fatalf("second event must show the new cloud: %+v", v.events[1])
	}
	if v.events[2].kind != "release" || v.events[2].cloud != old {
		t.Fatalf("third event must release the old cloud: %+v", v.events[2])
	}
	if m.Cloud().Len() != 80 || m.Params().Count != 80 {
		t.Fatalf("model not updated: %d points, params %+v", m.Cloud().Len(), m.Params())
	}
}

func TestApplyInvalidKeepsOldCloud(t *testing.T) {
	v := &recordingViewer{}
	m, err := NewModel(smallParams(), NewSource(1), v)
	if err != nil {
		t.Fatal(err)
	}
	old := m.Cloud()
	bad := smallParams()
	bad.Radius = -2
	if err := m.Apply(bad); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if m.Cloud() != old || m.Params().Radius != smallParams().Radius {
		t.Fatal("failed apply must leave the active cloud in place")
	}
	if len(v.events) != 1 {
		t.Fatalf("viewer must not be touched, got %+v", v.events)
	}
}

func TestApplyShowFailureReleasesNewCloud(t *testing.T) {
	v := &recordingViewer{}
	m, err := NewModel(smallParams(), NewSource(1), v)
	if err != nil {
		t.Fatal(err)
	}
	old := m.Cloud()
	v.failing = true
	next := smallParams()
	next.Branches = 5
	if err := m.Apply(next); err == nil {
		t.Fatal("expected show failure")
	}
	last := v.events[len(v.events)-1]
	if last.kind != "release" || last.cloud == old {
		t.Fatalf("the rejected cloud must be released, got %+v", last)
	}
	if m.Cloud() != old {
		t.Fatal("old cloud must stay active")
	}
}

func TestRegenerateWithoutCloudIsNoop(t *testing.T) {
	v := &recordingViewer{}
	m := &Model{src: NewSource(1), viewer: v}
	if err := m.Regenerate(); err != nil {
		t.Fatal(err)
	}
	if len(v.events) != 0 || m.Cloud() != nil {
		t.Fatalf("regenerate before first cloud must do nothing, got %+v", v.events)
	}
}

func TestReseedChangesCloud(t *testing.T) {
	v := &recordingViewer{}
	m, err := NewModel(smallParams(), NewSource(1), v)
	if err != nil {
		t.Fatal(err)
	}
	before := m.Cloud().Positions[0]
	if err := m.Reseed(NewSource(2)); err != nil {
		t.Fatal(err)
	}
	if m.Cloud().Positions[0] == before {
		t.Fatal("reseed should produce a different cloud")
	}
}

func TestSettersCommit(t *testing.T) {
	v := &recordingViewer{}
	m, err := NewModel(smallParams(), NewSource(1), v)
	if err != nil {
		t.Fatal(err)
	}
	if !m.SetIntParameter(KeyBranches, 6) || m.Params().Branches != 6 {
		t.Fatal("branches not committed")
	}
	if !m.SetFloatParameter(KeySpin, -2.5) || m.Params().Spin != -2.5 {
		t.Fatal("spin not committed")
	}
	if !m.SetColorParameter(KeyOutsideColor, "#ff0000") || m.Params().OutsideColor.Hex() != "#ff0000" {
		t.Fatal("outside color not committed")
	}
	if m.SetIntParameter(KeySpin, 1) {
		t.Fatal("spin is not an integer parameter")
	}
	if m.SetColorParameter(KeyInsideColor, "nope") {
		t.Fatal("malformed hex must be rejected")
	}
	if m.SetFloatParameter(KeyRadius, 0) {
		t.Fatal("zero radius must be rejected")
	}
	if m.Params().Radius != smallParams().Radius {
		t.Fatal("rejected value must not be installed")
	}
}

func TestCloseReleasesActiveCloud(t *testing.T) {
	v := &recordingViewer{}
	m, err := NewModel(smallParams(), NewSource(1), v)
	if err != nil {
		t.Fatal(err)
	}
	active := m.Cloud()
	m.Close()
	last := v.events[len(v.events)-1]
	if last.kind != "release" || last.cloud != active || m.Cloud() != nil {
		t.Fatalf("close must release the active cloud, got %+v", last)
	}
}

func TestControlsMatchSnapshot(t *testing.T) {
	m, err := NewModel(smallParams(), NewSource(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	snap := m.Parameters()
	for _, ctrl := range m.ParameterControls() {
		param, ok := snap.Lookup(ctrl.Key)
		if !ok {
			t.Fatalf("control %q has no parameter in the snapshot", ctrl.Key)
		}
		if param.Type != ctrl.Type {
			t.Fatalf("control %q type %s, parameter type %s", ctrl.Key, ctrl.Type, param.Type)
		}
	}
	count, _ := snap.Lookup(KeyCount)
	if count.Value != "60" {
		t.Fatalf("count value = %q", count.Value)
	}
	inside, _ := snap.Lookup(KeyInsideColor)
	if inside.Type != core.ParamTypeColor || inside.Value != "#4d7bf2" {
		t.Fatalf("inside color = %+v", inside)
	}
}
