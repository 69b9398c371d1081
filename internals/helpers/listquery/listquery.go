// file: internals/helpers/listquery/listquery.go
//
// Composição declarativa de filtros para endpoints de listagem.
// Cada tipo de registro declara uma Spec fixa (param → coluna → modo);
// Compose interpreta os query params e devolve condições WHERE com args
// vinculados. Valores do usuário nunca entram no texto da query, só as
// colunas da whitelist.
package listquery

import (
	"strings"
)

type Mode int

const (
	// Contains: substring case-insensitive (ILIKE %v%).
	Contains Mode = iota
	// Exact: igualdade simples.
	Exact
	// Search: substring case-insensitive em várias colunas (OR).
	Search
	// DateFrom: created_at >= v (início do dia).
	DateFrom
	// DateTo: created_at <= v até o fim do dia (23:59:59 UTC).
	DateTo
)

type Rule struct {
	Param   string
	Column  string   // alvo para Contains/Exact/DateFrom/DateTo
	Columns []string // alvos para Search
	Mode    Mode
}

type Spec struct {
	Rules       []Rule
	SortColumns map[string]string // sort_by permitido → coluna
	DefaultSort string            // coluna usada quando sort_by é inválido/ausente
}

// Compose lê os params via get (ex.: c.Query) e monta as condições.
// Param ausente ou vazio não impõe restrição nenhuma.
func (s Spec) Compose(get func(string) string) (conds []string, args []any) {
	for _, r := range s.Rules {
		v := strings.TrimSpace(get(r.Param))
		if v == "" {
			continue
		}
		switch r.Mode {
		case Contains:
			conds = append(conds, r.Column+" ILIKE ?")
			args = append(args, "%"+v+"%")
		case Exact:
			conds = append(conds, r.Column+" = ?")
			args = append(args, v)
		case Search:
			parts := make([]string, 0, len(r.Columns))
			for _, col := range r.Columns {
				parts = append(parts, col+" ILIKE ?")
				args = append(args, "%"+v+"%")
			}
			conds = append(conds, "("+strings.Join(parts, " OR ")+")")
		case DateFrom:
			conds = append(conds, r.Column+" >= ?")
			args = append(args, v)
		case DateTo:
			// Inclusivo até o fim do dia informado.
			conds = append(conds, r.Column+" <= ?")
			args = append(args, v+"T23:59:59Z")
		}
	}
	return conds, args
}

// Where junta as condições em uma cláusula única ("c1 AND c2 ...").
// Retorna "" quando não há filtro.
func Where(conds []string) string {
	return strings.Join(conds, " AND ")
}

// OrderBy resolve sort_by/sort_order contra a whitelist da Spec.
// sort_by desconhecido cai no DefaultSort; direção inválida vira DESC.
func (s Spec) OrderBy(sortBy, sortOrder string) string {
	col, ok := s.SortColumns[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		col = s.DefaultSort
	}
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(sortOrder), "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}
