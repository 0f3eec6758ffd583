package service

import "coverage-api-backend/internal/database/models"

// SampleCoverages returns the fixed records inserted after a schema
// recreate. Two rows, every field populated with placeholder staff names so
// assistant demos have data for each role lookup.
func SampleCoverages() []models.Coverage {
	return []models.Coverage{
		{
			ShortName:   "Alidade",
			CEID:        "6cfh6",
			Motion:      "Sell",
			PTSAuto:     "Surajeet Dey",
			PTSDA:       "Kenny Boutot",
			MgrDAAT:     "Mike Verona",
			PTSPower:    "Dana Whitfield",
			PTSStorage:  "Luis Camara",
			PTSSecurity: "Priya Raman",
			PTSSustain:  "Tom Ellery",
			PTSCross:    "Ines Fabri",
			PTSFinance:  "Greg Holt",
			PTSCloud:    "Mara Jensen",
			PTSData:     "Olu Adeyemi",
			PTSAI:       "Rita Kovacs",
			PTSNetwork:  "Sam Pickard",
			PTSZ:        "Ed Marchetti",
			PTSApps:     "Nina Castillo",
			PTSQuantum:  "Avi Shahar",
			PTSResil:    "Joan Beck",
			MgrPower:    "Carl Diaz",
			MgrStorage:  "Petra Lindqvist",
			MgrSecurity: "Henri Lacroix",
		},
		{
			ShortName:   "Activeworx/Miria",
			CEID:        "2rw5p3sj",
			Motion:      "Sell",
			PTSAuto:     "Surajeet Dey",
			PTSDA:       "John Power",
			MgrDAAT:     "Mike Verona",
			PTSPower:    "Dana Whitfield",
			PTSStorage:  "Luis Camara",
			PTSSecurity: "Priya Raman",
			PTSSustain:  "Tom Ellery",
			PTSCross:    "Ines Fabri",
			PTSFinance:  "Greg Holt",
			PTSCloud:    "Mara Jensen",
			PTSData:     "Olu Adeyemi",
			PTSAI:       "Rita Kovacs",
			PTSNetwork:  "Sam Pickard",
			PTSZ:        "Ed Marchetti",
			PTSApps:     "Nina Castillo",
			PTSQuantum:  "Avi Shahar",
			PTSResil:    "Joan Beck",
			MgrPower:    "Carl Diaz",
			MgrStorage:  "Petra Lindqvist",
			MgrSecurity: "Henri Lacroix",
		},
	}
}
