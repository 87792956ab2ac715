package api

// --- КЛИЕНТ -> СЕРВЕР ---

// GenerateRequest - запрос на генерацию уровня.
// Seed=0 означает "используй мастер-сид сервера".
type GenerateRequest struct {
	// Type тип сообщения. На данный момент всегда "GENERATE".
	Type string `json:"type"`

	// Seed мастер-сид. Один и тот же сид всегда дает одну и ту же карту.
	Seed int64 `json:"seed,omitempty"`

	// Branch ветка подземелья (0=main, 1=gehennom, 2=mines, ... 7=planes).
	Branch int8 `json:"branch"`

	// Depth номер уровня внутри ветки, начиная с 1.
	Depth int8 `json:"depth"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// LevelSnapshot это корневой объект, который сервер отправляет клиенту.
// Полный "снимок" сгенерированного уровня: террейн, комнаты, ловушки,
// лестницы, монстры и предметы.
type LevelSnapshot struct {
	// Type тип сообщения. На данный момент всегда "LEVEL".
	Type string `json:"type"`

	// Seed сид, из которого уровень был сгенерирован (сид уровня,
	// не мастер-сид).
	Seed int64 `json:"seed"`

	Branch int8 `json:"branch"`
	Depth  int8 `json:"depth"`

	// Grid метаданные о размере всей карты.
	Grid GridMeta `json:"grid"`

	// Flags свойства уровня целиком.
	Flags LevelFlagsView `json:"flags"`

	// Cells срез всех клеток карты, построчно.
	Cells []CellView `json:"cells"`

	Rooms    []RoomView    `json:"rooms,omitempty"`
	Traps    []TrapView    `json:"traps,omitempty"`
	Stairs   []StairView   `json:"stairs,omitempty"`
	Monsters []MonsterView `json:"monsters,omitempty"`
	Objects  []ObjectView  `json:"objects,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// LevelFlagsView - свойства уровня, влияющие на рендеринг и подсказки.
type LevelFlagsView struct {
	NoTeleport bool `json:"noTeleport,omitempty"`
	IsMaze     bool `json:"isMaze,omitempty"`
	Graveyard  bool `json:"graveyard,omitempty"`
	HasVault   bool `json:"hasVault,omitempty"`
	HasShop    bool `json:"hasShop,omitempty"`
	HasTemple  bool `json:"hasTemple,omitempty"`
}

// CellView это DTO для одной клетки карты.
// Содержит всю необходимую информацию для ее рендеринга.
type CellView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Terrain числовой тип террейна, Symbol - его текстовое представление.
	Terrain uint8  `json:"t"`
	Symbol  string `json:"symbol"`

	Lit bool `json:"lit,omitempty"`

	// Door состояние двери. Присутствует только на дверных клетках.
	Door uint8 `json:"door,omitempty"`

	// Altar мировоззрение алтаря. Присутствует только на алтарях.
	Altar uint8 `json:"altar,omitempty"`

	// Room индекс комнаты, которой принадлежит клетка. -1 вне комнат.
	Room int8 `json:"room"`
}

// RoomView это DTO для комнаты. Координаты - внутренность без стен.
type RoomView struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`

	// Kind тип комнаты ("ordinary", "temple", "general shop", ...).
	Kind string `json:"kind"`

	Lit   bool `json:"lit"`
	Doors int  `json:"doors"`
}

// TrapView это DTO для ловушки.
type TrapView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`

	// Dest заполняется только для магических порталов.
	Dest *LevelRef `json:"dest,omitempty"`
}

// StairView это DTO для лестницы.
type StairView struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Up   bool     `json:"up"`
	Dest LevelRef `json:"dest"`
}

// LevelRef - адрес уровня в подземелье.
type LevelRef struct {
	Branch int8 `json:"branch"`
	Depth  int8 `json:"depth"`
}

// MonsterView это DTO для монстра.
type MonsterView struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`

	HP       int  `json:"hp"`
	Sleeping bool `json:"sleeping,omitempty"`
	Peaceful bool `json:"peaceful,omitempty"`
}

// ObjectView это DTO для предмета на полу.
type ObjectView struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Class    string `json:"class"`
	Quantity int    `json:"qty"`

	// Price заполняется только для товаров в магазинах.
	Price int `json:"price,omitempty"`
}

// ErrorResponse отправляется клиенту при невалидном запросе.
type ErrorResponse struct {
	Type    string `json:"type"` // всегда "ERROR"
	Message string `json:"message"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Type: "ERROR", Message: msg}
}
