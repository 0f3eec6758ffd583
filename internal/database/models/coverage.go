package models

// Coverage represents one partner/account coverage assignment row.
// JSON field names are the external contract; storage column names are
// mapped explicitly and independently so neither side leaks into the other.
// Every string attribute is nullable at the storage layer and capped at 255
// characters; the primary key is assigned by the database on insert.
type Coverage struct {
	CID         int    `json:"cid" gorm:"column:cid;primaryKey;autoIncrement"`
	ShortName   string `json:"shortname" gorm:"column:partname;size:255"`
	CEID        string `json:"ceid" gorm:"column:ceid;size:255"`
	Motion      string `json:"motion" gorm:"column:motion;size:255"`
	PTSAuto     string `json:"ptsauto" gorm:"column:ptsauto;size:255"`
	PTSDA       string `json:"ptsda" gorm:"column:ptsda;size:255"`
	MgrDAAT     string `json:"mgrdaat" gorm:"column:daatechmgr;size:255"`
	PTSPower    string `json:"ptspower" gorm:"column:ptspower;size:255"`
	PTSStorage  string `json:"ptsstorage" gorm:"column:ptsstorage;size:255"`
	PTSSecurity string `json:"ptssecurity" gorm:"column:ptssecurity;size:255"`
	PTSSustain  string `json:"ptssustain" gorm:"column:ptssustain;size:255"`
	PTSCross    string `json:"ptscross" gorm:"column:ptscross;size:255"`
	PTSFinance  string `json:"ptsfinance" gorm:"column:ptsfinance;size:255"`
	PTSCloud    string `json:"ptscloud" gorm:"column:ptscloud;size:255"`
	PTSData     string `json:"ptsdata" gorm:"column:ptsdata;size:255"`
	PTSAI       string `json:"ptsai" gorm:"column:ptsai;size:255"`
	PTSNetwork  string `json:"ptsnetwork" gorm:"column:ptsnetwork;size:255"`
	PTSZ        string `json:"ptsz" gorm:"column:ptszsys;size:255"`
	PTSApps     string `json:"ptsapps" gorm:"column:ptsapps;size:255"`
	PTSQuantum  string `json:"ptsquantum" gorm:"column:ptsquantum;size:255"`
	PTSResil    string `json:"ptsresil" gorm:"column:ptsresil;size:255"`
	MgrPower    string `json:"mgrpower" gorm:"column:powertechmgr;size:255"`
	MgrStorage  string `json:"mgrstorage" gorm:"column:stortechmgr;size:255"`
	MgrSecurity string `json:"mgrsecurity" gorm:"column:sectechmgr;size:255"`
}
