package token

import "encoding/xml"

// The XML shape is what external pretty-printers walk:
//
//   <document>
//     <sentence>
//       <properword>Gavrilo Princip</properword>
//       <nonword> </nonword>
//       <word>fired</word>
//     </sentence>
//   </document>

var xmlKindName = []string{
	"word",
	"properword",
	"nonword",
}

// MarshalXML encodes the token under an element named after its kind,
// with the token text as character data.
func (t Token) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name.Local = xmlKindName[t.Kind]
	return e.EncodeElement(t.Text, start)
}

// MarshalXML encodes the document as a <document> element containing
// one <sentence> element per sentence.
func (d *Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name.Local = "document"
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, s := range d.Sentences {
		err := e.EncodeElement(s, xml.StartElement{Name: xml.Name{Local: "sentence"}})
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
