package transfermarkt

import "FubolSync/internal/model"

// prettierNames 数据源球队名 → 前端展示名，未收录的保持原名
var prettierNames = map[string]string{
	"CA Boca Juniors":                     "Boca Juniors",
	"CA River Plate":                      "River Plate",
	"CA Independiente":                    "Independiente",
	"CA Vélez Sarsfield":                  "Vélez Sarsfield",
	"Club Estudiantes de La Plata":        "Estudiantes de La Plata",
	"CA Rosario Central":                  "Rosario Central",
	"CA Talleres":                         "Talleres (C)",
	"AA Argentinos Juniors":               "Argentinos Juniors",
	"Club Atlético Belgrano":              "Belgrano (C)",
	"CA San Lorenzo de Almagro":           "San Lorenzo",
	"CA Lanús":                            "Lanús",
	"Club Atlético Tigre":                 "Tigre",
	"CA Huracán":                          "Huracán",
	"Club Atlético Platense":              "Platense",
	"Defensa y Justicia":                  "Defensa y Justicia",
	"CD Godoy Cruz Antonio Tomba":         "Godoy Cruz",
	"Instituto ACC":                       "Instituto (C)",
	"CS Independiente Rivadavia":          "Independiente Rivadavia",
	"CA Barracas Central":                 "Barracas Central",
	"CA Unión (Santa Fe)":                 "Unión de Santa Fe",
	"CA Newell's Old Boys":                "Newell´s Old Boys",
	"Club Atlético Tucumán":               "Atlético Tucumán",
	"CA Central Córdoba (SdE)":            "Central Córdoba (SdE)",
	"CA Banfield":                         "Banfield",
	"Club de Gimnasia y Esgrima La Plata": "Gimnasia de La Plata",
	"CA Sarmiento (Junin)":                "Sarmiento de Junín",
	"CA Aldosivi":                         "Aldosivi",
	"CA San Martín (San Juan)":            "San Martín (SJ)",
	"Club Deportivo Riestra":              "Deportivo Riestra",
	"Sociedade Esportiva Palmeiras":       "Palmeiras",
	"CR Flamengo":                         "Flamengo",
	"Botafogo de Futebol e Regatas":       "Botafogo",
	"Cruzeiro Esporte Clube":              "Cruzeiro",
	"Sport Club Corinthians Paulista":     "Corinthians",
	"Clube de Regatas Vasco da Gama":      "Vasco da Gama",
	"Esporte Clube Bahia":                 "Bahia",
	"Clube Atlético Mineiro":              "Atlético Mineiro",
	"Fluminense Football Club":            "Fluminense",
	"São Paulo Futebol Clube":             "São Paulo",
	"Red Bull Bragantino":                 "RB Bragantino",
	"Sport Club Internacional":            "Internacional",
	"Grêmio Foot-Ball Porto Alegrense":    "Grêmio",
	"Santos FC":                           "Santos",
	"Fortaleza Esporte Clube":             "Fortaleza",
	"Sport Club do Recife":                "Sport Recife",
	"Esporte Clube Vitória":               "Vitória",
	"Ceará Sporting Club":                 "Ceará",
	"Esporte Clube Juventude":             "Juventude",
	"Mirassol Futebol Clube (SP)":         "Mirassol",
	"Club Universidad de Chile":           "Universidad de Chile",
	"Club Alianza Lima":                   "Alianza Lima",
	"Bolivar La Paz":                      "Bolívar",
}

// positionNames 数据源（英文）位置 → 枚举值
var positionNames = map[string]model.Position{
	"Goalkeeper": model.PositionGoalkeeper,
	"Defender":   model.PositionDefender,
	"Midfield":   model.PositionMidfielder,
	"Attack":     model.PositionForward,
}

// PrettyName 查展示名，未收录返回原名
func PrettyName(name string) string {
	if pretty, ok := prettierNames[name]; ok {
		return pretty
	}
	return name
}

// TranslatePosition 翻译位置标签，未识别返回 nil
func TranslatePosition(label string) *model.Position {
	pos, ok := positionNames[label]
	if !ok {
		return nil
	}
	return &pos
}
