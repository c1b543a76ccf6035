/*
Copyright 2018 The pdfcpu Authors.

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

package iccserver

import (
	"fmt"

	"github.com/mechiko/go-iccprof/pkg/icc"
)

// TagSummary is a JSON-friendly view of one tag directory entry.
type TagSummary struct {
	Signature string `json:"signature"`
	Type      string `json:"type"`
	Offset    uint32 `json:"offset"`
	Size      uint32 `json:"size"`
}

// ProfileSummary is the JSON payload returned for an uploaded profile.
type ProfileSummary struct {
	ID              string `json:"id"`
	Version         string `json:"version"`
	DeviceClass     string `json:"deviceClass"`
	ColorSpace      string `json:"colorSpace"`
	PCS             string `json:"pcs"`
	CheckSum        string `json:"checkSum"`
	TagCount        int    `json:"tagCount"`
	HasGrayTRC      bool   `json:"hasGrayTRC"`
	HasColorTRC     bool   `json:"hasColorTRC"`
	HasXYZMatrix    bool   `json:"hasXYZMatrix"`
	HasA2B          bool   `json:"hasA2B"`
	Tags            []TagSummary `json:"tags"`
}

func summarize(id string, p *icc.Profile) ProfileSummary {
	s := ProfileSummary{
		ID:           id,
		Version:      versionString(p.Header.Version),
		DeviceClass:  icc.FourCC(p.Header.DeviceClass),
		ColorSpace:   p.Header.ColorSpace.String(),
		PCS:          p.Header.PCS.String(),
		CheckSum:     checksumString(p.CheckSum),
		TagCount:     p.TagCount(),
		HasGrayTRC:   p.GrayTRC != nil,
		HasColorTRC:  p.RedTRC != nil && p.GreenTRC != nil && p.BlueTRC != nil,
		HasXYZMatrix: p.ToXYZD50 != nil,
		HasA2B:       p.A2B != nil,
	}
	for i := 0; i < p.TagCount(); i++ {
		t := p.GetTagByIndex(i)
		s.Tags = append(s.Tags, TagSummary{
			Signature: t.Signature.String(),
			Type:      t.Type.String(),
			Size:      uint32(len(t.Data)),
		})
	}
	return s
}

func versionString(v icc.Version) string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.BugFix)
}

func checksumString(s icc.ChecksumStatus) string {
	switch s {
	case icc.ChecksumValid:
		return "valid"
	case icc.ChecksumInvalid:
		return "invalid"
	default:
		return "absent"
	}
}
