// Package earkmodels provides:
//
//   - Strongly typed models for the archival metadata standards used in
//     meemoo SIP packages: PREMIS 3.0, MODS 3.x and the DC+schema.org
//     descriptive profile, plus the SIP package aggregate itself
//   - A validating tree-to-object mapping engine: qualified-name resolution,
//     source-tracked tree navigation, field decoders and discriminated
//     dispatch over xsi:type
//   - A stable error model via Issues (element path, code, source document)
//
// Design policy:
//   - Keep only the error model in the root package; the engine lives under
//     xmltree/, decode/ and langstring/, one package per metadata standard,
//     and the CLI under cmd/earkmodels.
//   - Parsing is all-or-nothing: a document either maps completely onto its
//     typed model, or every violation found is reported together as Issues.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	p, err := premis.ParseFile("metadata/preservation/premis.xml")
//	pkg, err := sip.FromPath(root, dcschema.ParseFile)
package earkmodels
