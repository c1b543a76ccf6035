package icc

import "testing"

func TestTagDirectoryLookup(t *testing.T) {
	buf := buildProfile([]tagFixture{
		{SigRedTRC, identityCurvBlock()},
		{SigGreenTRC, identityCurvBlock()},
	})
	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TagCount() != 2 {
		t.Fatalf("TagCount() = %d, want 2", p.TagCount())
	}

	tag, ok := p.GetTagBySignature(SigGreenTRC)
	if !ok {
		t.Fatal("expected gTRC to be found")
	}
	if tag.Type != TypeCurv {
		t.Errorf("Type = %v, want TypeCurv", tag.Type)
	}

	if _, ok := p.GetTagBySignature(SigBlueTRC); ok {
		t.Error("expected bTRC to be absent")
	}

	byIndex := p.GetTagByIndex(0)
	if byIndex.Signature != SigRedTRC {
		t.Errorf("GetTagByIndex(0).Signature = %v, want rTRC", byIndex.Signature)
	}
}
