package envelope

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Parse reads an envelope from XML bytes. Producers prefix XHE
// elements in different ways, so when a plain lookup fails elements
// are matched by local name.
func Parse(data []byte) (*Envelope, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing envelope XML: %w", err)
	}

	root := doc.FindElement("//XHE")
	if root == nil {
		root = doc.FindElement("//*[local-name()='XHE']")
	}
	if root == nil {
		return nil, fmt.Errorf("no XHE element found")
	}

	env := &Envelope{}
	env.XHEVersionID = childText(root, "XHEVersionID")
	env.CustomizationID = childText(root, "CustomizationID")
	env.ProfileID = childText(root, "ProfileID")

	header := findChild(root, "Header")
	if header == nil {
		return nil, fmt.Errorf("no Header element found")
	}
	env.Header.ID = childText(header, "ID")
	env.Header.UUID = childText(header, "UUID")
	env.Header.CreationDateTimeString = childText(header, "CreationDateTime")

	if from := findChild(header, "FromParty"); from != nil {
		env.Header.FromParty = parseParty(from)
	}
	for _, to := range findChildren(header, "ToParty") {
		env.Header.ToParty = append(env.Header.ToParty, parseParty(to))
	}

	if bs := findChild(header, "BusinessScope"); bs != nil {
		for _, sc := range findChildren(bs, "Scope") {
			env.Header.BusinessScope = append(env.Header.BusinessScope, Scope{
				Type:       childText(sc, "Type"),
				InstanceID: childText(sc, "InstanceIdentifier"),
				Identifier: childText(sc, "Identifier"),
			})
		}
	}

	if payloads := findChild(root, "Payloads"); payloads != nil {
		for _, p := range findChildren(payloads, "Payload") {
			env.Payloads.Payload = append(env.Payloads.Payload, Payload{
				ID:              childText(p, "ID"),
				Description:     childText(p, "Description"),
				ContentTypeCode: childText(p, "ContentTypeCode"),
				Content:         childText(p, "PayloadContent"),
			})
		}
	}

	return env, nil
}

func parseParty(el *etree.Element) Party {
	var p Party
	id := el.FindElement(".//ID")
	if id == nil {
		id = el.FindElement(".//*[local-name()='ID']")
	}
	if id != nil {
		p.PartyID.Value = strings.TrimSpace(id.Text())
		p.PartyID.SchemeID = id.SelectAttrValue("schemeID", "")
	}
	return p
}

// Helper functions

func findChild(parent *etree.Element, name string) *etree.Element {
	if el := parent.FindElement("./" + name); el != nil {
		return el
	}
	return parent.FindElement("./*[local-name()='" + name + "']")
}

func findChildren(parent *etree.Element, name string) []*etree.Element {
	if els := parent.FindElements("./" + name); len(els) > 0 {
		return els
	}
	return parent.FindElements("./*[local-name()='" + name + "']")
}

func childText(parent *etree.Element, name string) string {
	if el := findChild(parent, name); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}
