package services

import (
	"fmt"
	"log"

	"github.com/olls-san/tecopos-helpcenter/models"
	"github.com/olls-san/tecopos-helpcenter/repository"
)

// SeedInitialData inserts two example error articles on first boot. It is
// guarded by the table being empty: any existing row means seeding already
// happened (or real content exists) and nothing is inserted.
func SeedInitialData(repo repository.ArticleRepository) error {
	existing, err := repo.ListAll()
	if err != nil {
		return fmt.Errorf("failed to check for existing articles: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	log.Println("INFO: [Seed] Empty article table detected, inserting example articles.")

	seeds := []*models.ArticleDraft{
		{
			Type:             models.DocTypeError,
			Title:            "No tiene permisos para realizar esta acción",
			PrimaryCategory:  models.CategoryErrors,
			Category:         "roles-permisos",
			IsCommon:         true,
			ShortDescription: "El usuario no tiene acceso al módulo seleccionado.",
			ClientMessage:    "No tiene permisos para realizar esta acción",
			Causes: []string{
				"El usuario no tiene un rol asignado.",
				"El rol no permite acceder a ese módulo.",
				"Está en el negocio incorrecto.",
			},
			QuickSteps: []string{
				"Cerrar sesión y volver a entrar.",
				"Verificar negocio seleccionado.",
				"Solicitar al administrador revisar el rol.",
			},
			InternalSteps: []string{
				"Revisar permisos del rol.",
				"Confirmar negocio asignado.",
			},
		},
		{
			Type:             models.DocTypeError,
			Title:            "Pantalla en blanco al iniciar sesión",
			PrimaryCategory:  models.CategoryErrors,
			Category:         "errores-comunes",
			IsCommon:         true,
			ShortDescription: "Suele ocurrir por caché acumulada o sesión expirada.",
			ClientMessage:    "La pantalla queda en blanco después de iniciar sesión.",
			Causes: []string{
				"Caché del navegador desactualizada.",
				"Sesión de usuario vencida.",
			},
			QuickSteps: []string{
				"Refrescar con Ctrl + F5.",
				"Cerrar sesión y volver a entrar.",
				"Probar en otro navegador.",
			},
		},
	}

	for _, draft := range seeds {
		if _, err := repo.Create(draft); err != nil {
			return fmt.Errorf("failed to seed article '%s': %w", draft.Title, err)
		}
	}

	log.Printf("INFO: [Seed] Inserted %d example articles.", len(seeds))
	return nil
}
