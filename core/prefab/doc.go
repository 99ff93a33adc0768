// Package prefab reads Unity-style multi-document text files (scenes, prefabs)
// as a header followed by record blocks.
//
// It is deliberately not a YAML parser. A document is split on the exact byte
// sequence "\n---" and each block is kept verbatim; only a handful of fields are
// extracted from a block:
//
//   - the block id, the integer after the last '&' of the first line;
//   - the record type tag, the second line of the block;
//   - the name of a container record (GameObject) from its name field;
//   - the owner id of every other record from its owner field.
//
// From these fields a Descriptor is derived for every block. Descriptors do not
// depend on block ids, so the same logical entity has the same descriptor in two
// versions of a document even when the editor renumbered it.
//
// # Usage
//
//	doc, err := prefab.DefaultDialect().Parse(text)
//	for _, b := range doc.Blocks {
//	    fmt.Println(b.ID, b.Descriptor)
//	}
package prefab
