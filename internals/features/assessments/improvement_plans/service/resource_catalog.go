package service

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync"
)

// SubjectResources son las URLs de refuerzo por materia. El catálogo se puede
// sobreescribir con un JSON apuntado por IMPROVEMENT_RESOURCES_FILE; los
// valores compilados quedan como fallback.
type SubjectResources struct {
	VideoURL    string `json:"video_url"`
	DocumentURL string `json:"document_url"`
	PracticeURL string `json:"practice_url"`
}

var defaultCatalog = map[string]SubjectResources{
	"matemáticas": {
		VideoURL:    "https://www.youtube.com/results?search_query=matematicas+refuerzo",
		DocumentURL: "https://www.colombiaaprende.edu.co/recursos/matematicas",
		PracticeURL: "https://co.khanacademy.org/math",
	},
	"lenguaje": {
		VideoURL:    "https://www.youtube.com/results?search_query=comprension+lectora",
		DocumentURL: "https://www.colombiaaprende.edu.co/recursos/lenguaje",
		PracticeURL: "https://co.khanacademy.org/humanities",
	},
	"ciencias naturales": {
		VideoURL:    "https://www.youtube.com/results?search_query=ciencias+naturales+refuerzo",
		DocumentURL: "https://www.colombiaaprende.edu.co/recursos/ciencias",
		PracticeURL: "https://co.khanacademy.org/science",
	},
	"ciencias sociales": {
		VideoURL:    "https://www.youtube.com/results?search_query=ciencias+sociales+refuerzo",
		DocumentURL: "https://www.colombiaaprende.edu.co/recursos/sociales",
		PracticeURL: "https://co.khanacademy.org/humanities",
	},
	"inglés": {
		VideoURL:    "https://www.youtube.com/results?search_query=english+practice+beginners",
		DocumentURL: "https://learnenglish.britishcouncil.org/",
		PracticeURL: "https://www.duolingo.com/",
	},
}

var genericResources = SubjectResources{
	VideoURL:    "https://www.youtube.com/results?search_query=refuerzo+escolar",
	DocumentURL: "https://www.colombiaaprende.edu.co/",
	PracticeURL: "https://co.khanacademy.org/",
}

var (
	catalogOnce   sync.Once
	loadedCatalog map[string]SubjectResources
)

func catalog() map[string]SubjectResources {
	catalogOnce.Do(func() {
		loadedCatalog = defaultCatalog
		path := strings.TrimSpace(os.Getenv("IMPROVEMENT_RESOURCES_FILE"))
		if path == "" {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[WARN] catálogo de recursos %s no disponible: %v", path, err)
			return
		}
		var external map[string]SubjectResources
		if err := json.Unmarshal(data, &external); err != nil {
			log.Printf("[WARN] catálogo de recursos %s inválido: %v", path, err)
			return
		}
		merged := make(map[string]SubjectResources, len(defaultCatalog)+len(external))
		for k, v := range defaultCatalog {
			merged[k] = v
		}
		for k, v := range external {
			merged[strings.ToLower(strings.TrimSpace(k))] = v
		}
		loadedCatalog = merged
	})
	return loadedCatalog
}

// ResourcesForSubject busca por materia (case-insensitive) con fallback genérico.
func ResourcesForSubject(subject string) SubjectResources {
	if r, ok := catalog()[strings.ToLower(strings.TrimSpace(subject))]; ok {
		return r
	}
	return genericResources
}
