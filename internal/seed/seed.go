// Package seed populates demo fixtures.  The core never depends on
// pre-seeded state; this exists so a fresh dev instance has something to
// browse and is enabled with SEED_DEMO_PROPERTIES=true.
package seed

import (
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/eco-rental-booking/internal/model"
	"github.com/iliyamo/eco-rental-booking/internal/repository"
)

// Demo creates a couple of sample properties.  Creation errors are
// logged and skipped; seeding must never prevent startup.
func Demo(directory *repository.PropertyDirectory, log *logrus.Logger) {
	fixtures := []struct {
		name      string
		basePrice float64
		ptype     model.PropertyType
	}{
		{"Eco-Apt 101", 1000.0, model.EcoApartment},
		{"Sustainable Home", 1000.0, model.SustainableHouse},
	}
	for _, f := range fixtures {
		if _, err := directory.Create(f.name, f.basePrice, f.ptype); err != nil {
			log.WithError(err).Warnf("seed: skipping %q", f.name)
			continue
		}
		log.Infof("seed: created demo property %q", f.name)
	}
}
