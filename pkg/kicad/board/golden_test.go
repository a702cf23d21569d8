package board

// Expected output for an empty standard board serialized with the
// Sequence id generator.
const goldenEmptyBoard = `(kicad_pcb
  (version 20241229)
  (generator "boardgen")
  (generator_version "1.0")
  (general
    (thickness 1.6)
    (legacy_teardrops no)
  )
  (paper "A4")
  (title_block
    (title "Golden")
    (date "2025-01")
    (rev "A")
    (comment 1 "Supercapacitor Power Assist")
    (comment 2 "200x120mm 2-layer PCB")
  )
  (layers
    (0 "F.Cu" signal)
    (31 "B.Cu" signal)
    (32 "B.Adhes" user "B.Adhesive")
    (33 "F.Adhes" user "F.Adhesive")
    (34 "B.Paste" user)
    (35 "F.Paste" user)
    (36 "B.SilkS" user "B.Silkscreen")
    (37 "F.SilkS" user "F.Silkscreen")
    (38 "B.Mask" user)
    (39 "F.Mask" user)
    (40 "Dwgs.User" user "User.Drawings")
    (41 "Cmts.User" user "User.Comments")
    (44 "Edge.Cuts" user)
    (46 "B.CrtYd" user "B.Courtyard")
    (47 "F.CrtYd" user "F.Courtyard")
    (48 "B.Fab" user)
    (49 "F.Fab" user)
  )
  (setup
    (pad_to_mask_clearance 0.05)
    (allow_soldermask_bridges_in_footprints no)
    (pcbplotparams
      (layerselection 0x00010fc_ffffffff)
      (plot_on_all_layers_selection 0x0000000_00000000)
    )
  )
  (net 0 "")
  (net 1 "GND")
  (net 2 "+3.3V")
  (net 3 "AC_L")
  (net 4 "AC_N")
  (net 5 "SC_POS")
  (net 6 "SC_NEG")
  (gr_rect
    (start 0 0)
    (end 200.0000 120.0000)
    (stroke
      (width 0.15)
      (type solid)
    )
    (fill none)
    (layer "Edge.Cuts")
    (uuid "id-000001")
  )
  (footprint "MountingHole:MountingHole_3.2mm_M3"
    (layer "F.Cu")
    (uuid "id-000002")
    (at 4.0000 4.0000)
    (property "Reference" "H1"
      (at 0 -3 0)
      (layer "F.SilkS")
      (uuid "id-000003")
      (effects (font (size 0.8 0.8) (thickness 0.12)))
    )
    (property "Value" "MountingHole"
      (at 0 3 0)
      (layer "F.Fab")
      (uuid "id-000004")
      (effects (font (size 0.8 0.8) (thickness 0.12)))
    )
    (property "Footprint" "MountingHole:MountingHole_3.2mm_M3"
      (at 0 0 0)
      (layer "F.Fab")
      (hide yes)
      (uuid "id-000005")
      (effects (font (size 1 1) (thickness 0.15)))
    )
    (pad "1" thru_hole circle
      (at 0 0)
      (size 6.4 6.4)
      (drill 3.2)
      (layers "*.Cu" "*.Mask")
      (remove_unused_layers no)
      (uuid "id-000006")
    )
  )
  (footprint "MountingHole:MountingHole_3.2mm_M3"
    (layer "F.Cu")
    (uuid "id-000007")
    (at 196.0000 4.0000)
    (property "Reference" "H2"
      (at 0 -3 0)
      (layer "F.SilkS")
      (uuid "id-000008")
      (effects (font (size 0.8 0.8) (thickness 0.12)))
    )
    (property "Value" "MountingHole"
      (at 0 3 0)
      (layer "F.Fab")
      (uuid "id-000009")
      (effects (font (size 0.8 0.8) (thickness 0.12)))
    )
    (property "Footprint" "MountingHole:MountingHole_3.2mm_M3"
      (at 0 0 0)
      (layer "F.Fab")
      (hide yes)
      (uuid "id-000010")
      (effects (font (size 1 1) (thickness 0.15)))
    )
    (pad "1" thru_hole circle
      (at 0 0)
      (size 6.4 6.4)
      (drill 3.2)
      (layers "*.Cu" "*.Mask")
      (remove_unused_layers no)
      (uuid "id-000011")
    )
  )
  (footprint "MountingHole:MountingHole_3.2mm_M3"
    (layer "F.Cu")
    (uuid "id-000012")
    (at 4.0000 116.0000)
    (property "Reference" "H3"
      (at 0 -3 0)
      (layer "F.SilkS")
      (uuid "id-000013")
      (effects (font (size 0.8 0.8) (thickness 0.12)))
    )
    (property "Value" "MountingHole"
      (at 0 3 0)
      (layer "F.Fab")
      (uuid "id-000014")
      (effects (font (size 0.8 0.8) (thickness 0.12)))
    )
    (property "Footprint" "MountingHole:MountingHole_3.2mm_M3"
      (at 0 0 0)
      (layer "F.Fab")
      (hide yes)
      (uuid "id-000015")
      (effects (font (size 1 1) (thickness 0.15)))
    )
    (pad "1" thru_hole circle
      (at 0 0)
      (size 6.4 6.4)
      (drill 3.2)
      (layers "*.Cu" "*.Mask")
      (remove_unused_layers no)
      (uuid "id-000016")
    )
  )
  (footprint "MountingHole:MountingHole_3.2mm_M3"
    (layer "F.Cu")
    (uuid "id-000017")
    (at 196.0000 116.0000)
    (property "Reference" "H4"
      (at 0 -3 0)
      (layer "F.SilkS")
      (uuid "id-000018")
      (effects (font (size 0.8 0.8) (thickness 0.12)))
    )
    (property "Value" "MountingHole"
      (at 0 3 0)
      (layer "F.Fab")
      (uuid "id-000019")
      (effects (font (size 0.8 0.8) (thickness 0.12)))
    )
    (property "Footprint" "MountingHole:MountingHole_3.2mm_M3"
      (at 0 0 0)
      (layer "F.Fab")
      (hide yes)
      (uuid "id-000020")
      (effects (font (size 1 1) (thickness 0.15)))
    )
    (pad "1" thru_hole circle
      (at 0 0)
      (size 6.4 6.4)
      (drill 3.2)
      (layers "*.Cu" "*.Mask")
      (remove_unused_layers no)
      (uuid "id-000021")
    )
  )
)
`
