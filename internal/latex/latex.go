// Package latex renders LaTeX math fragments as best-effort Unicode text.
//
// The output is a lossy transliteration, not a typeset equation: symbol
// commands map to single code points, fractions become (A)/(B), and
// super/subscripts use the Unicode superscript and subscript ranges.
// Transliterate never fails; unknown commands are stripped.
package latex

import (
	"regexp"
	"strings"
)

// Precompiled rewrite patterns. Order of application matters and is fixed
// by Transliterate.
var (
	leftRightCmd   = regexp.MustCompile(`\\(left|right)([^a-zA-Z]|$)`)
	sqrtGroup      = regexp.MustCompile(`√\{([^}]+)\}`)
	fracGroups     = regexp.MustCompile(`\\frac\{([^}]*)\}\{([^}]*)\}`)
	superGroup     = regexp.MustCompile(`\^\{([^}]*)\}`)
	superBareDigit = regexp.MustCompile(`\^(\d)`)
	subGroup       = regexp.MustCompile(`_\{([^}]*)\}`)
	subBareDigit   = regexp.MustCompile(`_(\d)`)
	residualCmd    = regexp.MustCompile(`\\[a-zA-Z]+`)
)

// wrapperCommands are no-op styling wrappers removed before symbol
// substitution. Opening-brace forms leave their closing brace behind;
// the excess is trimmed afterwards.
var wrapperCommands = []string{
	`\text{`,
	`\mathrm{`,
	`\mathbf{`,
	`\hat{`,
	`\bar{`,
	`\tilde{`,
	`\boxed{`,
	`\begin{aligned}`,
	`\end{aligned}`,
}

// spacingCommands map LaTeX spacing to literal spaces. \qquad is declared
// before \quad so the longer command is not split by the shorter one.
var spacingCommands = []struct{ cmd, repl string }{
	{`\qquad`, "  "},
	{`\quad`, " "},
	{`\,`, " "},
	{`\;`, " "},
	{`\:`, " "},
}

// symbolTable maps LaTeX symbol commands to Unicode code points, applied as
// flat ordered literal replacement. Commands that share a prefix after the
// backslash are declared longest first (\iint before \int before \in,
// \subseteq before \subset, \cdots before \cdot) so a shorter key never
// splits a longer one.
var symbolTable = []struct{ cmd, repl string }{
	// Greek lowercase
	{`\alpha`, "α"},
	{`\beta`, "β"},
	{`\gamma`, "γ"},
	{`\delta`, "δ"},
	{`\varepsilon`, "ε"},
	{`\epsilon`, "ϵ"},
	{`\zeta`, "ζ"},
	{`\eta`, "η"},
	{`\vartheta`, "ϑ"},
	{`\theta`, "θ"},
	{`\iota`, "ι"},
	{`\kappa`, "κ"},
	{`\lambda`, "λ"},
	{`\mu`, "μ"},
	{`\nu`, "ν"},
	{`\xi`, "ξ"},
	{`\pi`, "π"},
	{`\rho`, "ρ"},
	{`\sigma`, "σ"},
	{`\tau`, "τ"},
	{`\upsilon`, "υ"},
	{`\varphi`, "φ"},
	{`\phi`, "ϕ"},
	{`\chi`, "χ"},
	{`\psi`, "ψ"},
	{`\omega`, "ω"},
	// Greek uppercase
	{`\Gamma`, "Γ"},
	{`\Delta`, "Δ"},
	{`\Theta`, "Θ"},
	{`\Lambda`, "Λ"},
	{`\Xi`, "Ξ"},
	{`\Pi`, "Π"},
	{`\Sigma`, "Σ"},
	{`\Upsilon`, "Υ"},
	{`\Phi`, "Φ"},
	{`\Psi`, "Ψ"},
	{`\Omega`, "Ω"},
	// Binary operators
	{`\times`, "×"},
	{`\div`, "÷"},
	{`\pm`, "±"},
	{`\mp`, "∓"},
	{`\cdots`, "⋯"},
	{`\cdot`, "·"},
	{`\oplus`, "⊕"},
	{`\otimes`, "⊗"},
	{`\wedge`, "∧"},
	{`\vee`, "∨"},
	// Relations
	{`\leq`, "≤"},
	{`\geq`, "≥"},
	{`\neq`, "≠"},
	{`\approx`, "≈"},
	{`\equiv`, "≡"},
	{`\propto`, "∝"},
	{`\sim`, "∼"},
	{`\ll`, "≪"},
	{`\gg`, "≫"},
	{`\perp`, "⊥"},
	{`\parallel`, "∥"},
	// Arrows
	{`\leftrightarrow`, "↔"},
	{`\rightarrow`, "→"},
	{`\leftarrow`, "←"},
	{`\Rightarrow`, "⇒"},
	{`\Leftarrow`, "⇐"},
	{`\mapsto`, "↦"},
	{`\to`, "→"},
	// Set operators
	{`\subseteq`, "⊆"},
	{`\subset`, "⊂"},
	{`\supseteq`, "⊇"},
	{`\supset`, "⊃"},
	{`\notin`, "∉"},
	{`\infty`, "∞"},
	{`\iint`, "∬"},
	{`\int`, "∫"},
	{`\in`, "∈"},
	{`\cup`, "∪"},
	{`\cap`, "∩"},
	{`\emptyset`, "∅"},
	{`\forall`, "∀"},
	{`\exists`, "∃"},
	{`\neg`, "¬"},
	// Calculus
	{`\oint`, "∮"},
	{`\sum`, "∑"},
	{`\prod`, "∏"},
	{`\partial`, "∂"},
	{`\nabla`, "∇"},
	// Misc
	{`\hbar`, "ℏ"},
	{`\sqrt`, "√"},
	{`\angle`, "∠"},
	{`\circ`, "∘"},
	{`\ldots`, "…"},
	{`\dots`, "…"},
	{`\prime`, "′"},
	{`\ell`, "ℓ"},
	{`\aleph`, "ℵ"},
	{`\degree`, "°"},
}

// superscriptMap covers digits, signs, parentheses and the two letters
// that have Unicode superscript forms in common use here. Unmapped
// characters pass through unchanged.
var superscriptMap = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

// subscriptMap covers digits, signs, parentheses and the letters with
// Unicode subscript forms. Unmapped characters pass through unchanged.
var subscriptMap = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'o': 'ₒ', 'x': 'ₓ', 'h': 'ₕ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'p': 'ₚ',
	's': 'ₛ', 't': 'ₜ',
}

// Transliterate converts a LaTeX math fragment to a Unicode approximation.
// It is pure and total: malformed or unknown input degrades to plain text
// rather than failing.
func Transliterate(input string) string {
	s := input

	// 1. Strip no-op wrapping commands.
	for _, cmd := range wrapperCommands {
		s = strings.ReplaceAll(s, cmd, "")
	}
	s = leftRightCmd.ReplaceAllString(s, "$2")

	// 2. Spacing commands become literal spaces.
	for _, sp := range spacingCommands {
		s = strings.ReplaceAll(s, sp.cmd, sp.repl)
	}

	// 3. Wrapper stripping leaves orphaned closing braces; drop the excess
	// from the tail one at a time.
	for strings.Count(s, "}") > strings.Count(s, "{") {
		idx := strings.LastIndex(s, "}")
		if idx < 0 {
			break
		}
		s = s[:idx] + s[idx+1:]
	}

	// 4. Symbol commands to single code points.
	for _, sym := range symbolTable {
		s = strings.ReplaceAll(s, sym.cmd, sym.repl)
	}

	// 5. \sqrt{X} was turned into √{X} above; give the argument visible
	// parentheses.
	s = sqrtGroup.ReplaceAllString(s, "√($1)")

	// 6. Fractions. Nested braces are not supported: the first closing
	// brace ends the group.
	s = fracGroups.ReplaceAllString(s, "($1)/($2)")

	// 7. Superscripts, braced and bare single digit.
	s = superGroup.ReplaceAllStringFunc(s, func(m string) string {
		return mapChars(m[2:len(m)-1], superscriptMap)
	})
	s = superBareDigit.ReplaceAllStringFunc(s, func(m string) string {
		return mapChars(m[1:], superscriptMap)
	})

	// 8. Subscripts, same shape.
	s = subGroup.ReplaceAllStringFunc(s, func(m string) string {
		return mapChars(m[2:len(m)-1], subscriptMap)
	})
	s = subBareDigit.ReplaceAllStringFunc(s, func(m string) string {
		return mapChars(m[1:], subscriptMap)
	})

	// 9. Remaining grouping braces carry no meaning in plain text.
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")

	// 10. Strip unknown commands, then stray backslashes.
	s = residualCmd.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, `\`, "")

	// 11.
	return strings.TrimSpace(s)
}

// mapChars translates each rune through m, passing unmapped runes through.
func mapChars(s string, m map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mapped, ok := m[r]; ok {
			b.WriteRune(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
