package entity

// Catálogos sugeridos para los filtros del listado. Type y Location son texto libre;
// estos valores solo alimentan los selects de la interfaz.
var (
	EquipmentTypes = []string{"Computador", "Portátil", "Monitor", "Impresora", "Escáner", "Servidor", "Router"}
	Locations      = []string{"Oficina 101", "Oficina 102", "Oficina 201", "Bodega", "Contabilidad", "Depto. TI"}
)
