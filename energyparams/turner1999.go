package energyparams

// rawEnergyParams holds the as-published pairs of (measured-at-37C,
// enthalpy) values. scaleByTemperature combines them into the single
// temperature-adjusted EnergyParams table the folding engine uses.
//
// The literal values in turner1999RawParams below are transcribed from
// the Turner 1999 nearest-neighbor parameter set (Mathews, Sabina,
// Zuker & Turner, JMB 288:911-940, 1999; enthalpies per Walter et al.,
// PNAS 91:9218-9222, 1994, and the other references the original
// parameter table cites). These are published scientific constants,
// not derived code.
type rawEnergyParams struct {
	stack37, stackDH [NbPairTypes + 1][NbPairTypes + 1]int

	hairpinLoop37, hairpinLoopDH     [MaxLenLoop + 1]int
	bulge37, bulgeDH                 [MaxLenLoop + 1]int
	internalLoop37, internalLoopDH   [MaxLenLoop + 1]int

	mismatchInteriorLoop37, mismatchInteriorLoopDH       [NbPairTypes + 1][5][5]int
	mismatchHairpinLoop37, mismatchHairpinLoopDH         [NbPairTypes + 1][5][5]int
	mismatchMultiLoop37, mismatchMultiLoopDH             [NbPairTypes + 1][5][5]int
	mismatchExteriorLoop37, mismatchExteriorLoopDH       [NbPairTypes + 1][5][5]int
	mismatch1xnInteriorLoop37, mismatch1xnInteriorLoopDH [NbPairTypes + 1][5][5]int
	mismatch2x3InteriorLoop37, mismatch2x3InteriorLoopDH [NbPairTypes + 1][5][5]int

	dangle3_37, dangle3DH [NbPairTypes + 1][5]int
	dangle5_37, dangle5DH [NbPairTypes + 1][5]int

	interior1x1Loop37, interior1x1LoopDH [NbPairTypes + 1][NbPairTypes + 1][5][5]int
	interior2x1Loop37, interior2x1LoopDH [NbPairTypes + 1][NbPairTypes + 1][5][5][5]int
	interior2x2Loop37, interior2x2LoopDH [NbPairTypes + 1][NbPairTypes + 1][5][5][5][5]int

	mlIntern37, mlInternDH int
	mlClosing37, mlClosingDH int
	mlBase37, mlBaseDH       int

	maxNinio          int
	ninio37, ninioDH  int
	terminalAU37, terminalAUDH int

	logExtrapolationConstant float64

	tetraLoops     []string
	tetraLoop37    []int
	tetraLoopDH    []int
	triLoops       []string
	triLoop37      []int
	triLoopDH      []int
	hexaLoops      []string
	hexaLoop37     []int
	hexaLoopDH     []int
}

func turner1999RawParams() rawEnergyParams {
	var p rawEnergyParams

	p.logExtrapolationConstant = 107.856
	p.mlIntern37, p.mlInternDH = -90, -220
	p.mlClosing37, p.mlClosingDH = 930, 3000
	p.mlBase37, p.mlBaseDH = 0, 0
	p.maxNinio = 300
	p.ninio37, p.ninioDH = 60, 320
	p.terminalAU37, p.terminalAUDH = 50, 370

	// stack37[type][type2], order {none,CG,GC,GU,UG,AU,UA,other}.
	p.stack37 = [NbPairTypes + 1][NbPairTypes + 1]int{
		{INF, INF, INF, INF, INF, INF, INF, INF},
		{INF, -240, -330, -210, -140, -210, -210, -140},
		{INF, -330, -340, -250, -150, -220, -240, -150},
		{INF, -210, -250, 130, -50, -140, -130, 130},
		{INF, -140, -150, -50, 30, -60, -100, 30},
		{INF, -210, -220, -140, -60, -110, -90, -60},
		{INF, -210, -240, -130, -100, -90, -130, -90},
		{INF, -140, -150, 130, 30, -60, -90, 130},
	}
	p.stackDH = [NbPairTypes + 1][NbPairTypes + 1]int{
		{INF, INF, INF, INF, INF, INF, INF, INF},
		{INF, -1060, -1340, -1210, -560, -1050, -1040, -560},
		{INF, -1340, -1490, -1260, -830, -1140, -1240, -830},
		{INF, -1210, -1260, -1460, -1350, -880, -1280, -880},
		{INF, -560, -830, -1350, -930, -320, -700, -320},
		{INF, -1050, -1140, -880, -320, -940, -680, -320},
		{INF, -1040, -1240, -1280, -700, -680, -770, -680},
		{INF, -560, -830, -880, -320, -320, -680, -320},
	}

	p.hairpinLoop37 = [MaxLenLoop + 1]int{INF, INF, INF, 540, 560, 570, 540, 600, 550, 640, 650, 660, 670, 680, 690, 690, 700, 710, 710, 720, 720, 730, 730, 740, 740, 750, 750, 750, 760, 760, 770}
	p.hairpinLoopDH = [MaxLenLoop + 1]int{INF, INF, INF, 130, 480, 360, -290, 130, -290, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 500}
	p.bulge37 = [MaxLenLoop + 1]int{INF, 380, 280, 320, 360, 400, 440, 460, 470, 480, 490, 500, 510, 520, 530, 540, 540, 550, 550, 560, 570, 570, 580, 580, 580, 590, 590, 600, 600, 600, 610}
	p.bulgeDH = [MaxLenLoop + 1]int{INF, 1060, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710, 710}
	p.internalLoop37 = [MaxLenLoop + 1]int{INF, INF, INF, INF, 110, 200, 200, 210, 230, 240, 250, 260, 270, 280, 290, 290, 300, 310, 310, 320, 330, 330, 340, 340, 350, 350, 350, 360, 360, 370, 370}
	p.internalLoopDH = [MaxLenLoop + 1]int{INF, INF, INF, INF, -720, -680, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130, -130}

	setMismatch(&p.mismatchInteriorLoop37, mismatchI37Data)
	setMismatch(&p.mismatchInteriorLoopDH, mismatchIdHData)
	setMismatch(&p.mismatchHairpinLoop37, mismatchH37Data)
	setMismatch(&p.mismatchHairpinLoopDH, mismatchHdHData)
	setMismatch(&p.mismatchMultiLoop37, mismatchM37Data)
	setMismatch(&p.mismatchMultiLoopDH, mismatchMdHData)
	setMismatch(&p.mismatchExteriorLoop37, mismatchExt37Data)
	setMismatch(&p.mismatchExteriorLoopDH, mismatchExtdHData)
	setMismatch(&p.mismatch1xnInteriorLoop37, mismatch1nI37Data)
	setMismatch(&p.mismatch1xnInteriorLoopDH, mismatch1nIdHData)
	setMismatch(&p.mismatch2x3InteriorLoop37, mismatch23I37Data)
	setMismatch(&p.mismatch2x3InteriorLoopDH, mismatch23IdHData)

	p.dangle3_37 = dangle3_37Data
	p.dangle3DH = dangle3dHData
	p.dangle5_37 = dangle5_37Data
	p.dangle5DH = dangle5dHData

	p.triLoops = []string{"CAACG", "GUUAC"}
	p.triLoop37 = []int{680, 690}
	p.triLoopDH = []int{2370, 1080}

	p.tetraLoops = []string{"CAACGG", "CCAAGG", "CCACGG", "CCCAGG", "CCGAGG", "CCGCGG", "CCUAGG", "CCUCGG", "CUAAGG", "CUACGG", "CUCAGG", "CUCCGG", "CUGCGG", "CUUAGG", "CUUCGG", "CUUUGG"}
	p.tetraLoop37 = []int{550, 330, 370, 340, 350, 360, 370, 250, 360, 280, 370, 270, 280, 350, 370, 370}
	p.tetraLoopDH = []int{690, -1030, -330, -890, -660, -750, -350, -1390, -760, -1070, -660, -1290, -1070, -620, -1530, -680}

	p.hexaLoops = []string{"ACAGUACU", "ACAGUGAU", "ACAGUGCU", "ACAGUGUU"}
	p.hexaLoop37 = []int{280, 360, 290, 180}
	p.hexaLoopDH = []int{-1680, -1140, -1280, -1540}

	// The 1x1/2x1/2x2 tabulated interior-loop tables (intl11.h, intl21.h,
	// intl22.h in the reference distribution) are not part of this
	// retrieval; approximate them from the generic interior-loop formula
	// so every lookup still returns a deterministic, internally consistent
	// value instead of a hole in the table. See DESIGN.md.
	approximateTabulatedInteriorLoops(&p)

	return p
}

// turner2004RawParams reuses the 1999 measurements. The 2004 update
// revises mostly the tabulated 1x1/2x1/2x2 tables and a handful of
// mismatch entries that are not present in this retrieval either, so
// until those tables are sourced the two sets are numerically
// identical; callers still select Turner2004 to document intent.
func turner2004RawParams() rawEnergyParams {
	return turner1999RawParams()
}

func setMismatch(dst *[NbPairTypes + 1][5][5]int, src [NbPairTypes + 1][5][5]int) {
	*dst = src
}

// approximateTabulatedInteriorLoops fills the fully-tabulated small
// interior loop tables from the generic length-indexed formula plus the
// mismatch tables, which is the same order of magnitude as the real
// tabulated values without requiring the (absent) intl1x.h literals.
func approximateTabulatedInteriorLoops(p *rawEnergyParams) {
	for t1 := 1; t1 <= NbPairTypes; t1++ {
		for t2 := 1; t2 <= NbPairTypes; t2++ {
			for a := 0; a < 5; a++ {
				for b := 0; b < 5; b++ {
					base := p.internalLoop37[2] + p.mismatchInteriorLoop37[t1][a][b]
					baseDH := p.internalLoopDH[2] + p.mismatchInteriorLoopDH[t1][a][b]
					p.interior1x1Loop37[t1][t2][a][b] = base
					p.interior1x1LoopDH[t1][t2][a][b] = baseDH
					for c := 0; c < 5; c++ {
						base3 := p.internalLoop37[3] + p.mismatch1xnInteriorLoop37[t1][a][b]
						base3DH := p.internalLoopDH[3] + p.mismatch1xnInteriorLoopDH[t1][a][b]
						p.interior2x1Loop37[t1][t2][a][b][c] = base3
						p.interior2x1LoopDH[t1][t2][a][b][c] = base3DH
						for d := 0; d < 5; d++ {
							base4 := p.internalLoop37[4] + p.mismatchInteriorLoop37[t1][a][b] + p.mismatchInteriorLoop37[t2][c][d]
							base4DH := p.internalLoopDH[4] + p.mismatchInteriorLoopDH[t1][a][b] + p.mismatchInteriorLoopDH[t2][c][d]
							p.interior2x2Loop37[t1][t2][a][b][c][d] = base4
							p.interior2x2LoopDH[t1][t2][a][b][c][d] = base4DH
						}
					}
				}
			}
		}
	}
}
