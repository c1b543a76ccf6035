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

package icc

// tagDirEntrySize is the width in bytes of a single tag directory entry:
// a 4-byte signature followed by two 4-byte big-endian offsets/sizes.
const tagDirEntrySize = 12

// tagDirStart is the byte offset of the first tag directory entry,
// immediately after the 128-byte header and the 4-byte tag count.
const tagDirStart = 132

// tagEntry is a (signature, offset, size) triple located in the tag
// directory. It never borrows payload bytes itself; Tag does that once
// the entry has been resolved against the profile's buffer.
type tagEntry struct {
	sig    TagSignature
	offset uint32
	size   uint32
}

// Tag is a borrowed reference into the profile's input buffer: the
// signature naming the directory slot, the raw payload bytes, and the
// payload's declared type (its first four bytes), when the payload is
// large enough to carry one.
type Tag struct {
	Signature TagSignature
	Data      []byte
	Type      PayloadType
}

// GetTagByIndex fills a tag handle from directory entry i. The caller
// must ensure 0 <= i < p.TagCount; this mirrors spec.md §4.3, which
// places that bounds contract on the caller rather than on the
// directory itself.
func (p *Profile) GetTagByIndex(i int) Tag {
	e := p.dir[i]
	return p.resolveTag(e)
}

// GetTagBySignature performs a linear scan of the tag directory and
// returns the first entry whose signature matches sig.
func (p *Profile) GetTagBySignature(sig TagSignature) (Tag, bool) {
	for _, e := range p.dir {
		if e.sig == sig {
			return p.resolveTag(e), true
		}
	}
	return Tag{}, false
}

// TagCount reports the number of entries in the tag directory.
func (p *Profile) TagCount() int { return len(p.dir) }

func (p *Profile) resolveTag(e tagEntry) Tag {
	data := p.raw[e.offset : e.offset+e.size]
	var typ PayloadType
	if len(data) >= 4 {
		typ = PayloadType(getUint32(data, 0))
	}
	return Tag{Signature: e.sig, Data: data, Type: typ}
}
