package extractor

import "docmine/doctree"

// collectThrowsTags gathers every raw throws-tag declaration relevant to
// member, in order: the member's own tags, then the tags of the declaration
// supplying its inherited documentation, then the tags declared on interface
// methods the holder implements. No deduplication is applied; overlapping
// tags from multiple ancestor levels each represent a separately documented
// condition and are all carried forward.
func (x *Extractor) collectThrowsTags(member *doctree.Executable) []doctree.RawTag {
	tags := x.provider.Tags(member, doctree.TagThrows)

	// A member that overrides another while rewriting its comment keeps only
	// its own tags; one whose comment is absent or delegates picks up the
	// holder's tags.
	holder := x.provider.ResolveHolder(member)
	if holder != nil && holder != member {
		tags = append(tags, x.provider.Tags(holder, doctree.TagThrows)...)
	}

	// The holder search does not look through interfaces reachable only from
	// the concrete member, so interface-declared tags are merged separately.
	if holder != nil && !holder.Constructor {
		for _, impl := range x.provider.ImplementedMethods(member) {
			tags = append(tags, x.provider.Tags(impl, doctree.TagThrows)...)
		}
	}

	return tags
}
