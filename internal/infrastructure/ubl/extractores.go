package ubl

import (
	"strings"

	"github.com/beevik/etree"
)

// estrategia intenta ubicar un elemento a partir de otro.
type estrategia func(*etree.Element) *etree.Element

// paso un segmento de ruta ya resuelto: namespace y nombre local.
type paso struct {
	ns    string
	local string
}

func compilar(ruta string) []paso {
	segs := strings.Split(ruta, "/")
	out := make([]paso, 0, len(segs))
	for _, s := range segs {
		p := paso{local: s}
		if i := strings.IndexByte(s, ':'); i >= 0 {
			p.ns = prefijos[s[:i]]
			p.local = s[i+1:]
		}
		out = append(out, p)
	}
	return out
}

// calificado sigue la ruta exigiendo el namespace de cada segmento.
func calificado(ruta string) estrategia {
	pasos := compilar(ruta)
	return func(e *etree.Element) *etree.Element { return seguir(e, pasos, true) }
}

// local sigue la ruta comparando solo el nombre local (cualquier prefijo o ninguno).
func local(ruta string) estrategia {
	pasos := compilar(ruta)
	return func(e *etree.Element) *etree.Element { return seguir(e, pasos, false) }
}

func seguir(e *etree.Element, pasos []paso, conNS bool) *etree.Element {
	cur := e
	for _, p := range pasos {
		cur = hijo(cur, p, conNS)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func hijo(e *etree.Element, p paso, conNS bool) *etree.Element {
	for _, c := range e.ChildElements() {
		if c.Tag != p.local {
			continue
		}
		if !conNS || p.ns == "" || c.NamespaceURI() == p.ns {
			return c
		}
	}
	return nil
}

func hijos(e *etree.Element, p paso, conNS bool) []*etree.Element {
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if c.Tag != p.local {
			continue
		}
		if !conNS || p.ns == "" || c.NamespaceURI() == p.ns {
			out = append(out, c)
		}
	}
	return out
}

// cadena lista ordenada de estrategias para un campo.
type cadena struct {
	estrategias []estrategia
	conTexto    bool // exige texto no vacío (campos); false para contenedores
}

// campo arma la cadena de un valor textual: por cada ruta, primero calificada y luego local.
func campo(rutas ...string) cadena {
	c := cadena{conTexto: true}
	for _, r := range rutas {
		c.estrategias = append(c.estrategias, calificado(r), local(r))
	}
	return c
}

// nodo arma la cadena de un contenedor (basta con que exista).
func nodo(rutas ...string) cadena {
	c := campo(rutas...)
	c.conTexto = false
	return c
}

func (c cadena) elemento(e *etree.Element) *etree.Element {
	if e == nil {
		return nil
	}
	for _, s := range c.estrategias {
		el := s(e)
		if el == nil {
			continue
		}
		if !c.conTexto || strings.TrimSpace(el.Text()) != "" {
			return el
		}
	}
	return nil
}

func (c cadena) texto(e *etree.Element) string {
	if el := c.elemento(e); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// atributo primer atributo no vacío entre los nombres dados.
func atributo(e *etree.Element, nombres ...string) string {
	if e == nil {
		return ""
	}
	for _, n := range nombres {
		if v := strings.TrimSpace(e.SelectAttrValue(n, "")); v != "" {
			return v
		}
	}
	return ""
}

// lista devuelve los hijos directos de la primera familia de líneas que tenga elementos.
func lista(e *etree.Element, familias ...string) []*etree.Element {
	for _, f := range familias {
		p := compilar(f)[0]
		if out := hijos(e, p, true); len(out) > 0 {
			return out
		}
		if out := hijos(e, p, false); len(out) > 0 {
			return out
		}
	}
	return nil
}
