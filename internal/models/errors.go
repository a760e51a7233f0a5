package models

import "errors"

// ErrNotFound é devolvido pelos repositórios quando o registro não existe
var ErrNotFound = errors.New("record not found")

func UintPtr(v uint) *uint {
	return &v
}

func UintValue(p *uint) uint {
	if p == nil {
		return 0
	}
	return *p
}

// ErrDuplicate indica violação de unicidade (ex.: email de usuário)
var ErrDuplicate = errors.New("duplicate record")
