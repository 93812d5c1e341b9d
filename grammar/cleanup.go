package grammar

// Cleanup removes rules that can only ever match the empty string and
// rewrites references to them as Epsilon, renormalizing the bodies that
// held those references. Emptiness propagates through NonTerminal chains,
// so detection iterates to a fixed point before anything is pruned.
//
// Cleanup is an explicit edit of the table; Compile never runs it.
func (g *Grammar) Cleanup() {
	eps := make(map[string]bool)
	for {
		changed := false
		for _, name := range g.names {
			if eps[name] {
				continue
			}
			if isEpsilon(g.rules[name], eps) {
				eps[name] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	if len(eps) == 0 {
		return
	}

	kept := make([]string, 0, len(g.names))
	for _, name := range g.names {
		if eps[name] {
			delete(g.rules, name)
			continue
		}
		body := prune(g.rules[name], eps)
		if _, ok := body.(Epsilon); ok {
			// Pruning its references emptied the rule too.
			delete(g.rules, name)
			continue
		}
		g.rules[name] = body
		kept = append(kept, name)
	}
	g.names = kept
}

// isEpsilon reports whether sym matches only the empty string, assuming
// the rules in eps already do.
func isEpsilon(sym Symbol, eps map[string]bool) bool {
	switch s := sym.(type) {
	case Epsilon:
		return true
	case NonTerminal:
		return eps[s.Name]
	case Sequence:
		for _, item := range s.Items {
			if !isEpsilon(item, eps) {
				return false
			}
		}
		return true
	case Choice:
		for _, alt := range s.Alternatives {
			if !isEpsilon(alt, eps) {
				return false
			}
		}
		return true
	}
	return false
}

// prune replaces references to rules in eps with Epsilon and renormalizes:
// epsilon items drop out of sequences, epsilon alternatives collapse to a
// single trailing Epsilon in choices.
func prune(sym Symbol, eps map[string]bool) Symbol {
	switch s := sym.(type) {
	case NonTerminal:
		if eps[s.Name] {
			return Epsilon{}
		}
		return s
	case Sequence:
		items := make([]Symbol, 0, len(s.Items))
		for _, item := range s.Items {
			if p := prune(item, eps); !isEpsilonNode(p) {
				items = append(items, p)
			}
		}
		switch len(items) {
		case 0:
			return Epsilon{}
		case 1:
			return items[0]
		}
		return Sequence{Items: items}
	case Choice:
		alts := make([]Symbol, 0, len(s.Alternatives))
		hasEpsilon := false
		for _, alt := range s.Alternatives {
			if p := prune(alt, eps); isEpsilonNode(p) {
				hasEpsilon = true
			} else {
				alts = append(alts, p)
			}
		}
		if len(alts) == 0 {
			return Epsilon{}
		}
		if hasEpsilon {
			alts = append(alts, Epsilon{})
		}
		if len(alts) == 1 {
			return alts[0]
		}
		return Choice{Alternatives: alts}
	}
	return sym
}

func isEpsilonNode(sym Symbol) bool {
	_, ok := sym.(Epsilon)
	return ok
}
