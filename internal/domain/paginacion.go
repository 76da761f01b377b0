package domain

// Paginacion envuelve una página de resultados con sus metadatos, con la
// misma forma en todos los listados.
type Paginacion struct {
	Data      interface{} `json:"data"`
	Total     int         `json:"total"`
	Pagina    int         `json:"pagina"`
	PorPagina int         `json:"porPagina"`
	Paginas   int         `json:"paginas"`
}

// NuevaPaginacion arma los metadatos a partir del total de registros.
func NuevaPaginacion(data interface{}, total, pagina, porPagina int) *Paginacion {
	paginas := 0
	if porPagina > 0 {
		paginas = (total + porPagina - 1) / porPagina
	}
	return &Paginacion{
		Data:      data,
		Total:     total,
		Pagina:    pagina,
		PorPagina: porPagina,
		Paginas:   paginas,
	}
}
