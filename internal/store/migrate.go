package store

import "encoding/json"

// migrateCursos reconciles legacy cursos.json shapes before decoding:
//
//   - a top-level "courses" key (an older revision of the routes) becomes
//     the canonical "cursos";
//   - a flat "price" field becomes the two-tier priceProfesional /
//     priceEstudiante pair;
//   - a "benefits" string list becomes a single "temas" section.
//
// The migration is applied in memory on every load; the next successful
// write persists the canonical shape. Unparseable input is returned
// unchanged so the store's fail-open decode handles it.
func migrateCursos(raw []byte) []byte {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return raw
	}

	list, ok := top["cursos"]
	if !ok {
		if legacy, found := top["courses"]; found {
			list = legacy
			delete(top, "courses")
		} else {
			return raw
		}
	}

	var records []map[string]json.RawMessage
	if err := json.Unmarshal(list, &records); err != nil {
		return raw
	}

	for _, record := range records {
		if price, found := record["price"]; found {
			if _, has := record["priceProfesional"]; !has {
				record["priceProfesional"] = price
			}
			if _, has := record["priceEstudiante"]; !has {
				record["priceEstudiante"] = price
			}
			delete(record, "price")
		}
		if benefits, found := record["benefits"]; found {
			if _, has := record["temas"]; !has {
				var contenidos []string
				if err := json.Unmarshal(benefits, &contenidos); err == nil {
					tema := map[string]interface{}{"titulo": "Beneficios", "contenidos": contenidos}
					if encoded, err := json.Marshal([]interface{}{tema}); err == nil {
						record["temas"] = encoded
					}
				}
			}
			delete(record, "benefits")
		}
	}

	migratedList, err := json.Marshal(records)
	if err != nil {
		return raw
	}
	top["cursos"] = migratedList

	migrated, err := json.Marshal(top)
	if err != nil {
		return raw
	}
	return migrated
}
