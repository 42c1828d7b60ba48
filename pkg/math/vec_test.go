package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{3, 4, 5}
	got := a.Add(b)
	want := Vec3{4, 6, 8}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3AddWeighted(t *testing.T) {
	got := Vec3{1, 1, 1}.AddWeighted(Vec3{2, 4, 8}, 0.5)
	want := Vec3{2, 3, 5}
	if got != want {
		t.Errorf("Vec3.AddWeighted() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 12}
	if got := v.Length(); got != 13 {
		t.Errorf("Vec3.Length() = %v, want 13", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestCentroid(t *testing.T) {
	got := Centroid(Vec3{0, 0, 0}, Vec3{2, 0, 0}, Vec3{2, 2, 0}, Vec3{0, 2, 0})
	want := Vec3{1, 1, 0}
	if got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
	if c := Centroid(); c != (Vec3{}) {
		t.Errorf("Centroid() of nothing = %v", c)
	}
}

func TestVec3String(t *testing.T) {
	if s := (Vec3{0.5, -1, 2}).String(); s != "0.5 -1 2" {
		t.Errorf("Vec3.String() = %q", s)
	}
}
