// Package doxygen decodes the XML files Doxygen writes with GENERATE_XML.
package doxygen

import (
	"encoding/xml"
)

// Index is the content of index.xml.
type Index struct {
	XMLName   xml.Name        `xml:"doxygenindex"`
	Version   string          `xml:"version,attr"`
	Compounds []IndexCompound `xml:"compound"`
}

// IndexCompound summarizes one compound and the members it declares.
type IndexCompound struct {
	RefID   string        `xml:"refid,attr"`
	Kind    string        `xml:"kind,attr"`
	Name    string        `xml:"name"`
	Members []IndexMember `xml:"member"`
}

type IndexMember struct {
	RefID string `xml:"refid,attr"`
	Kind  string `xml:"kind,attr"`
	Name  string `xml:"name"`
}

// CompoundFile is the root of a <refid>.xml file.
type CompoundFile struct {
	XMLName   xml.Name      `xml:"doxygen"`
	Version   string        `xml:"version,attr"`
	Compounds []CompoundDef `xml:"compounddef"`
}

// CompoundDef holds the detail of a namespace, class, struct or union.
type CompoundDef struct {
	ID         string       `xml:"id,attr"`
	Kind       string       `xml:"kind,attr"`
	Prot       string       `xml:"prot,attr"`
	Language   string       `xml:"language,attr"`
	Name       string       `xml:"compoundname"`
	Bases      []BaseRef    `xml:"basecompoundref"`
	Sections   []SectionDef `xml:"sectiondef"`
	Brief      Markup       `xml:"briefdescription"`
	Detailed   Markup       `xml:"detaileddescription"`
	InnerClass []InnerRef   `xml:"innerclass"`
}

type BaseRef struct {
	RefID string `xml:"refid,attr"`
	Prot  string `xml:"prot,attr"`
	Virt  string `xml:"virt,attr"`
	Name  string `xml:",chardata"`
}

type InnerRef struct {
	RefID string `xml:"refid,attr"`
	Prot  string `xml:"prot,attr"`
	Name  string `xml:",chardata"`
}

// SectionDef groups members by visibility and category, e.g. public-func.
type SectionDef struct {
	Kind    string      `xml:"kind,attr"`
	Members []MemberDef `xml:"memberdef"`
}

// MemberDef is the full declaration of one member.
type MemberDef struct {
	Kind           string             `xml:"kind,attr"`
	ID             string             `xml:"id,attr"`
	Prot           string             `xml:"prot,attr"`
	Static         string             `xml:"static,attr"`
	Const          string             `xml:"const,attr"`
	Explicit       string             `xml:"explicit,attr"`
	Inline         string             `xml:"inline,attr"`
	Virt           string             `xml:"virt,attr"`
	Mutable        string             `xml:"mutable,attr"`
	TemplateParams *TemplateParamList `xml:"templateparamlist"`
	Type           Markup             `xml:"type"`
	Definition     string             `xml:"definition"`
	ArgsString     string             `xml:"argsstring"`
	Name           string             `xml:"name"`
	Params         []Param            `xml:"param"`
	Brief          Markup             `xml:"briefdescription"`
	Detailed       Markup             `xml:"detaileddescription"`
}

type TemplateParamList struct {
	Params []Param `xml:"param"`
}

type Param struct {
	Type     Markup `xml:"type"`
	DeclName string `xml:"declname"`
	DefName  string `xml:"defname"`
}

// Name returns the declared parameter name, falling back to the name used in
// the definition.
func (p Param) Name() string {
	if p.DeclName != "" {
		return p.DeclName
	}
	return p.DefName
}

// Flag reports whether a yes/no attribute is set.
func Flag(v string) bool {
	return v == "yes"
}
